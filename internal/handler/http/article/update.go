package article

import (
	"encoding/json"
	"net/http"

	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// UpdateHandler lets the owner edit a pending or rejected article. Editing a
// rejected article resubmits it for review.
type UpdateHandler struct{ Svc *artUC.Service }

func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/my/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		CoverImage       *string  `json:"cover_image"`
		Title            *string  `json:"title"`
		ShortDescription *string  `json:"short_description"`
		FullDescription  *string  `json:"full_description"`
		Categories       []string `json:"categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Edit(r.Context(), auth.UserFrom(r.Context()), id, artUC.EditInput{
		CoverImage:       req.CoverImage,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Categories:       req.Categories,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	respond.Success(w, http.StatusOK, "article updated", toDTO(art))
}
