package repository

import (
	"context"
	"time"
)

// AuthorRank is one entry of the top-author ranking.
type AuthorRank struct {
	AuthorID       string
	Username       string
	PublishedCount int64
}

// CategoryRank is one entry of the top-category ranking.
type CategoryRank struct {
	Category       string
	PublishedCount int64
}

// AnalyticsRepository provides the derived read-only aggregates behind the
// dashboard report. Implementations use the relational join capability of the
// persistence layer (articles joined with users).
type AnalyticsRepository interface {
	// CountArticlesCreatedSince counts articles created at or after since.
	CountArticlesCreatedSince(ctx context.Context, since time.Time) (int64, error)
	// CountArticlesPublishedSince counts articles published at or after since.
	CountArticlesPublishedSince(ctx context.Context, since time.Time) (int64, error)
	// TopAuthors ranks authors by published-article count within the
	// window, ties broken by stable (author id) order.
	TopAuthors(ctx context.Context, since time.Time, limit int) ([]AuthorRank, error)
	// TopCategories ranks category tags by published-article frequency
	// within the window.
	TopCategories(ctx context.Context, since time.Time, limit int) ([]CategoryRank, error)
}
