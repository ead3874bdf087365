package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// Period selects the reporting window, counted back from now.
type Period string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"

	// DefaultPeriod applies when the caller passes no period.
	DefaultPeriod = PeriodMonth

	topAuthorsLimit    = 5
	topCategoriesLimit = 10
)

// ParsePeriod maps a raw query value onto a Period. Empty selects the
// default; anything else is rejected.
func ParsePeriod(raw string) (Period, error) {
	switch Period(raw) {
	case "":
		return DefaultPeriod, nil
	case PeriodWeek, PeriodMonth, PeriodYear:
		return Period(raw), nil
	default:
		return "", &entity.ValidationError{Field: "period", Message: "must be week, month or year"}
	}
}

// Start returns the beginning of the window ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// Report aggregates platform activity over one period.
type Report struct {
	Period            Period
	From              time.Time
	To                time.Time
	NewArticles       int64
	PublishedArticles int64
	NewUsers          int64
	TopAuthors        []repository.AuthorRank
	TopCategories     []repository.CategoryRank
}

// Service computes moderation and growth reports for the admin dashboard.
type Service struct {
	Analytics repository.AnalyticsRepository
	Users     repository.UserRepository

	// Now is swappable in tests; nil means time.Now.
	Now func() time.Time
}

// BuildReport runs the window queries concurrently and assembles the report.
// Admin-only.
func (s *Service) BuildReport(ctx context.Context, admin *entity.Admin, period Period) (*Report, error) {
	if admin == nil {
		return nil, entity.ErrForbidden
	}

	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	since := period.Start(now)

	report := &Report{Period: period, From: since, To: now}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.Analytics.CountArticlesCreatedSince(gctx, since)
		if err != nil {
			return fmt.Errorf("count created articles: %w", err)
		}
		report.NewArticles = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Analytics.CountArticlesPublishedSince(gctx, since)
		if err != nil {
			return fmt.Errorf("count published articles: %w", err)
		}
		report.PublishedArticles = n
		return nil
	})
	g.Go(func() error {
		n, err := s.Users.CountCreatedSince(gctx, since)
		if err != nil {
			return fmt.Errorf("count new users: %w", err)
		}
		report.NewUsers = n
		return nil
	})
	g.Go(func() error {
		ranks, err := s.Analytics.TopAuthors(gctx, since, topAuthorsLimit)
		if err != nil {
			return fmt.Errorf("top authors: %w", err)
		}
		report.TopAuthors = ranks
		return nil
	})
	g.Go(func() error {
		ranks, err := s.Analytics.TopCategories(gctx, since, topCategoriesLimit)
		if err != nil {
			return fmt.Errorf("top categories: %w", err)
		}
		report.TopCategories = ranks
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if report.TopAuthors == nil {
		report.TopAuthors = []repository.AuthorRank{}
	}
	if report.TopCategories == nil {
		report.TopCategories = []repository.CategoryRank{}
	}
	return report, nil
}
