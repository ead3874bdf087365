// Package analytics serves the admin dashboard report.
package analytics

import (
	"errors"
	"net/http"
	"time"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/auth"
	"pressroom/internal/handler/http/respond"
	anaUC "pressroom/internal/usecase/analytics"
)

// AuthorRankDTO is one row of the top-author ranking.
type AuthorRankDTO struct {
	AuthorID       string `json:"author_id"`
	Username       string `json:"username"`
	PublishedCount int64  `json:"published_count"`
}

// CategoryRankDTO is one row of the top-category ranking.
type CategoryRankDTO struct {
	Category       string `json:"category"`
	PublishedCount int64  `json:"published_count"`
}

// ReportDTO is the JSON shape of the dashboard report.
type ReportDTO struct {
	Period            string            `json:"period"`
	From              time.Time         `json:"from"`
	To                time.Time         `json:"to"`
	NewArticles       int64             `json:"new_articles"`
	PublishedArticles int64             `json:"published_articles"`
	NewUsers          int64             `json:"new_users"`
	TopAuthors        []AuthorRankDTO   `json:"top_authors"`
	TopCategories     []CategoryRankDTO `json:"top_categories"`
}

// ReportHandler serves GET /admin/analytics?period=week|month|year.
type ReportHandler struct{ Svc *anaUC.Service }

func (h ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	period, err := anaUC.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	report, err := h.Svc.BuildReport(r.Context(), auth.AdminFrom(r.Context()), period)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			respond.Fail(w, http.StatusForbidden, err.Error())
			return
		}
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	authors := make([]AuthorRankDTO, 0, len(report.TopAuthors))
	for _, a := range report.TopAuthors {
		authors = append(authors, AuthorRankDTO{
			AuthorID:       a.AuthorID,
			Username:       a.Username,
			PublishedCount: a.PublishedCount,
		})
	}
	categories := make([]CategoryRankDTO, 0, len(report.TopCategories))
	for _, c := range report.TopCategories {
		categories = append(categories, CategoryRankDTO{
			Category:       c.Category,
			PublishedCount: c.PublishedCount,
		})
	}

	respond.Success(w, http.StatusOK, "", ReportDTO{
		Period:            string(report.Period),
		From:              report.From,
		To:                report.To,
		NewArticles:       report.NewArticles,
		PublishedArticles: report.PublishedArticles,
		NewUsers:          report.NewUsers,
		TopAuthors:        authors,
		TopCategories:     categories,
	})
}

// Register registers the analytics route, admin-gated.
func Register(mux *http.ServeMux, svc *anaUC.Service, guard *auth.Guard) {
	mux.Handle("GET    /admin/analytics", guard.Admin(ReportHandler{Svc: svc}))
}
