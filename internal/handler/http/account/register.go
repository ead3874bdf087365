package account

import (
	"net/http"

	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/middleware"
	accUC "pressroom/internal/usecase/account"
)

// Register registers the account routes on the mux. Credential endpoints sit
// behind the per-IP login throttle; admin registration is admin-gated.
func Register(mux *http.ServeMux, svc *accUC.Service, guard *auth.Guard, throttle *middleware.LoginThrottle) {
	mux.Handle("POST   /auth/register", throttle.Wrap(RegisterHandler{Svc: svc}))
	mux.Handle("POST   /auth/login", throttle.Wrap(LoginHandler{Svc: svc}))
	mux.Handle("POST   /auth/admin/login", throttle.Wrap(AdminLoginHandler{Svc: svc}))
	mux.Handle("POST   /auth/admin/register", guard.Admin(AdminRegisterHandler{Svc: svc}))

	mux.Handle("GET    /profile", guard.Any(ProfileHandler{Svc: svc}))
}
