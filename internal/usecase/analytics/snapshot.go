package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"pressroom/internal/domain/entity"
	"pressroom/internal/observability/metrics"
	"pressroom/internal/repository"
)

// Snapshot refreshes the business gauges from durable storage. The API
// process updates counters as requests flow through it, but gauges like
// articles-by-status drift whenever a process restarts; the worker runs this
// periodically to keep them honest.
type Snapshot struct {
	Articles repository.ArticleRepository
	Users    repository.UserRepository
	Logger   *slog.Logger
}

// NewSnapshot builds a gauge snapshot service.
func NewSnapshot(articles repository.ArticleRepository, users repository.UserRepository, logger *slog.Logger) *Snapshot {
	return &Snapshot{Articles: articles, Users: users, Logger: logger}
}

// Refresh recounts articles per lifecycle status and the registered user
// total, then pushes the results into the Prometheus gauges. The status
// counts run concurrently; any single failure aborts the refresh so a stale
// gauge is never half-updated with partial data.
func (s *Snapshot) Refresh(ctx context.Context) error {
	statuses := []entity.Status{entity.StatusPending, entity.StatusPublished, entity.StatusRejected}
	counts := make([]int64, len(statuses))

	g, gctx := errgroup.WithContext(ctx)
	for i, status := range statuses {
		g.Go(func() error {
			n, err := s.Articles.Count(gctx, repository.ArticleQuery{Statuses: []entity.Status{status}})
			if err != nil {
				return fmt.Errorf("count %s articles: %w", status, err)
			}
			counts[i] = n
			return nil
		})
	}

	var users int64
	g.Go(func() error {
		n, err := s.Users.CountCreatedSince(gctx, time.Time{})
		if err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		users = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	for i, status := range statuses {
		metrics.UpdateArticlesByStatus(string(status), counts[i])
	}
	metrics.UpdateUsersTotal(users)

	if s.Logger != nil {
		s.Logger.Info("gauge snapshot refreshed",
			slog.Int64("pending", counts[0]),
			slog.Int64("published", counts[1]),
			slog.Int64("rejected", counts[2]),
			slog.Int64("users", users))
	}
	return nil
}
