package article

import (
	"log/slog"
	"net/http"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	artUC "pressroom/internal/usecase/article"
)

// Register registers the article routes on the mux. Public reads are
// anonymous; the owner workspace requires a user; moderation requires an
// admin.
func Register(mux *http.ServeMux, svc *artUC.Service, guard *auth.Guard, paginationCfg pagination.Config, logger *slog.Logger) {
	// Public catalogue.
	mux.Handle("GET    /articles", ListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger})
	mux.Handle("GET    /articles/", GetHandler{Svc: svc})

	// Owner workspace.
	mux.Handle("POST   /articles", guard.User(CreateHandler{Svc: svc}))
	mux.Handle("GET    /my/articles", guard.User(OwnListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))
	mux.Handle("GET    /my/articles/", guard.User(OwnGetHandler{Svc: svc}))
	mux.Handle("PUT    /my/articles/", guard.User(UpdateHandler{Svc: svc}))
	mux.Handle("DELETE /my/articles/", guard.User(DeleteHandler{Svc: svc}))

	// Moderation queue.
	mux.Handle("GET    /admin/articles", guard.Admin(AdminListHandler{Svc: svc, PaginationCfg: paginationCfg, Logger: logger}))
	mux.Handle("GET    /admin/articles/", guard.Admin(AdminGetHandler{Svc: svc}))
	mux.Handle("POST   /admin/articles/", guard.Admin(ModerateHandler{Svc: svc}))
	mux.Handle("DELETE /admin/articles/", guard.Admin(AdminDeleteHandler{Svc: svc}))
}
