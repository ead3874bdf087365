// Package account provides the HTTP handlers for registration, login and
// the authenticated profile view.
package account

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/respond"
	accUC "pressroom/internal/usecase/account"
)

// PrincipalDTO is the public representation of an identity. The credential
// hash never appears here.
type PrincipalDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionDTO is the login response payload.
type SessionDTO struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	Principal PrincipalDTO `json:"principal"`
}

func toPrincipalDTO(p entity.Principal) PrincipalDTO {
	dto := PrincipalDTO{Role: string(p.Role)}
	switch p.Role {
	case entity.RoleAdmin:
		dto.ID = p.Admin.ID
		dto.Username = p.Admin.Username
		dto.Email = p.Admin.Email
		dto.CreatedAt = p.Admin.CreatedAt
	case entity.RoleUser:
		dto.ID = p.User.ID
		dto.Username = p.User.Username
		dto.Email = p.User.Email
		dto.CreatedAt = p.User.CreatedAt
	}
	return dto
}

func toSessionDTO(s *accUC.Session) SessionDTO {
	return SessionDTO{
		Token:     s.Token,
		ExpiresIn: int64(s.ExpiresIn.Seconds()),
		Principal: toPrincipalDTO(s.Principal),
	}
}

// writeError maps account failures onto status codes.
func writeError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, entity.ErrDuplicate):
		respond.Fail(w, http.StatusConflict, "username or email already registered")
	case errors.Is(err, entity.ErrInvalidCredentials):
		respond.Fail(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, accUC.ErrAccountNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.As(err, &verr):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterHandler creates a new author account.
type RegisterHandler struct{ Svc *accUC.Service }

func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	user, err := h.Svc.RegisterUser(r.Context(), accUC.RegisterInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusCreated, "account created",
		toPrincipalDTO(entity.UserPrincipal(user)))
}

// AdminRegisterHandler creates a new admin account. Reached only through an
// admin-gated route.
type AdminRegisterHandler struct{ Svc *accUC.Service }

func (h AdminRegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	admin, err := h.Svc.RegisterAdmin(r.Context(), accUC.RegisterInput(req))
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusCreated, "admin account created",
		toPrincipalDTO(entity.AdminPrincipal(admin)))
}

// LoginHandler authenticates an author and issues a token.
type LoginHandler struct{ Svc *accUC.Service }

func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := h.Svc.LoginUser(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "logged in", toSessionDTO(sess))
}

// AdminLoginHandler authenticates an admin and issues a token.
type AdminLoginHandler struct{ Svc *accUC.Service }

func (h AdminLoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := h.Svc.LoginAdmin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "logged in", toSessionDTO(sess))
}

// ProfileHandler returns the account behind the authenticated principal.
type ProfileHandler struct{ Svc *accUC.Service }

func (h ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFrom(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	current, err := h.Svc.Profile(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "", toPrincipalDTO(current))
}
