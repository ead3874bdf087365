package article

import (
	"net/http"

	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// DeleteHandler removes one of the caller's own articles, any status.
type DeleteHandler struct{ Svc *artUC.Service }

func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/my/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.DeleteOwn(r.Context(), auth.UserFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "article deleted", nil)
}

// AdminDeleteHandler removes any article on behalf of an admin.
type AdminDeleteHandler struct{ Svc *artUC.Service }

func (h AdminDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.DeleteAny(r.Context(), auth.AdminFrom(r.Context()), id); err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "article deleted", nil)
}
