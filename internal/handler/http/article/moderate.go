package article

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/pathutil"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// ModerateHandler dispatches the admin lifecycle actions:
// POST /admin/articles/{id}/approve|reject|unpublish.
// Reject and unpublish accept an optional reason in the body.
type ModerateHandler struct{ Svc *artUC.Service }

func (h ModerateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, action, err := pathutil.ExtractIDAndAction(r.URL.Path, "/admin/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	admin := auth.AdminFrom(r.Context())

	switch action {
	case "approve":
		art, err := h.Svc.Approve(r.Context(), admin, id)
		if err != nil {
			writeError(w, err)
			return
		}
		respond.Success(w, http.StatusOK, "article published", toDTO(art))
	case "reject":
		reason, err := readReason(r)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		art, err := h.Svc.Reject(r.Context(), admin, id, reason)
		if err != nil {
			writeError(w, err)
			return
		}
		respond.Success(w, http.StatusOK, "article rejected", toDTO(art))
	case "unpublish":
		reason, err := readReason(r)
		if err != nil {
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}
		art, err := h.Svc.Unpublish(r.Context(), admin, id, reason)
		if err != nil {
			writeError(w, err)
			return
		}
		respond.Success(w, http.StatusOK, "article unpublished", toDTO(art))
	default:
		respond.Fail(w, http.StatusNotFound, "unknown action")
	}
}

// readReason decodes the optional {"reason": "..."} body. An empty body is
// a valid no-reason request.
func readReason(r *http.Request) (string, error) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return req.Reason, nil
}
