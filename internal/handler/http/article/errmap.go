package article

import (
	"errors"
	"net/http"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	artUC "pressroom/internal/usecase/article"
)

// writeError maps lifecycle failures onto status codes. The mapping is the
// single place where domain errors become HTTP.
func writeError(w http.ResponseWriter, err error) {
	var verr *entity.ValidationError
	switch {
	case errors.Is(err, artUC.ErrInvalidArticleID):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, artUC.ErrArticleNotFound), errors.Is(err, entity.ErrNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case errors.Is(err, entity.ErrForbidden):
		respond.SafeError(w, http.StatusForbidden, err)
	case errors.Is(err, entity.ErrInvalidTransition):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.As(err, &verr):
		respond.SafeError(w, http.StatusBadRequest, err)
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
