package article

import (
	"encoding/json"
	"net/http"

	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// CreateHandler accepts a new article submission from an authenticated user.
// Whatever status the client sends is ignored: new articles start pending.
type CreateHandler struct{ Svc *artUC.Service }

func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CoverImage       string   `json:"cover_image"`
		Title            string   `json:"title"`
		ShortDescription string   `json:"short_description"`
		FullDescription  string   `json:"full_description"`
		Categories       []string `json:"categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), auth.UserFrom(r.Context()), artUC.CreateInput{
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
	respond.Success(w, http.StatusCreated, "article submitted for review", toDTO(art))
}
