package article

import (
	"log/slog"
	"net/http"
	"time"

	"pressroom/internal/common/pagination"
	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/requestid"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/logging"
	artUC "pressroom/internal/usecase/article"
)

// parseQuery reads pagination and filter parameters off the request.
func parseQuery(r *http.Request, cfg pagination.Config) (artUC.Query, error) {
	params, err := pagination.ParseQueryParams(r, cfg)
	if err != nil {
		return artUC.Query{}, err
	}
	values := r.URL.Query()
	return artUC.Query{
		Pagination: params,
		Status:     values.Get("status"),
		Search:     values.Get("search"),
		Category:   values.Get("category"),
	}, nil
}

// ListHandler serves the public catalogue: published articles only, newest
// publication first.
type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	q, err := parseQuery(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("invalid pagination parameters",
			"error", err.Error(),
			"request_id", requestid.FromContext(ctx))
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPublished(ctx, q)
	if err != nil {
		logger.Error("failed to list published articles",
			"error", err.Error(),
			"page", q.Pagination.Page,
			"request_id", requestid.FromContext(ctx))
		pagination.RecordError("database")
		writeError(w, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, q.Pagination.Page)
	logger.Info("public article listing",
		"page", q.Pagination.Page,
		"returned_count", len(result.Data),
		"duration_ms", time.Since(startTime).Milliseconds())

	respond.Success(w, http.StatusOK, "",
		pagination.NewResponse(toListItems(result.Data), result.Pagination))
}

// OwnListHandler serves the caller's own articles in every status.
type OwnListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h OwnListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	q, err := parseQuery(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListOwn(ctx, auth.UserFrom(ctx), q)
	if err != nil {
		logger.Error("failed to list own articles",
			"error", err.Error(),
			"request_id", requestid.FromContext(ctx))
		pagination.RecordError("database")
		writeError(w, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, q.Pagination.Page)
	respond.Success(w, http.StatusOK, "",
		pagination.NewResponse(toListItems(result.Data), result.Pagination))
}

// AdminListHandler serves the moderation queue: every article, filterable
// by status.
type AdminListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

func (h AdminListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.WithRequestID(ctx, h.Logger)

	q, err := parseQuery(r, h.PaginationCfg)
	if err != nil {
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListAll(ctx, auth.AdminFrom(ctx), q)
	if err != nil {
		logger.Error("failed to list articles",
			"error", err.Error(),
			"status_filter", q.Status,
			"request_id", requestid.FromContext(ctx))
		pagination.RecordError("database")
		writeError(w, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, q.Pagination.Page)
	respond.Success(w, http.StatusOK, "",
		pagination.NewResponse(toListItems(result.Data), result.Pagination))
}
