package article

import (
	"net/http"

	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// GetHandler serves a single published article to the public view.
// Unpublished articles read as not found.
type GetHandler struct{ Svc *artUC.Service }

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.GetPublished(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "", toDTO(art))
}

// OwnGetHandler serves one of the caller's own articles, any status.
type OwnGetHandler struct{ Svc *artUC.Service }

func (h OwnGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/my/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.GetOwn(r.Context(), auth.UserFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "", toDTO(art))
}

// AdminGetHandler serves any article to the moderation view.
type AdminGetHandler struct{ Svc *artUC.Service }

func (h AdminGetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/admin/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.GetAny(r.Context(), auth.AdminFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "", toDTO(art))
}
