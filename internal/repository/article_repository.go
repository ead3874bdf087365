// Package repository defines the persistence collaborator interfaces consumed
// by the use case layer. Implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"pressroom/internal/domain/entity"
)

// Order selects the sort column for article listings.
type Order int

const (
	// OrderCreatedDesc sorts by creation time, newest first. Used by
	// admin and owner views.
	OrderCreatedDesc Order = iota
	// OrderPublishedDesc sorts by published date, newest first. Used by
	// the public view.
	OrderPublishedDesc
)

// ArticleQuery describes filtering, searching, and pagination for article
// listings. Zero values mean "no filter".
type ArticleQuery struct {
	// Statuses restricts results to the given lifecycle states.
	Statuses []entity.Status
	// AuthorID restricts results to one owner.
	AuthorID string
	// Search is a case-insensitive substring matched against title,
	// short description, and category tags.
	Search string
	// Category is an exact match against the lowercased tag set.
	Category string
	Order    Order
	Offset   int
	Limit    int
}

// ArticleRepository provides durable storage for articles.
// Get returns (nil, nil) when the article does not exist.
type ArticleRepository interface {
	Get(ctx context.Context, id string) (*entity.Article, error)
	// List returns one page of articles matching the query.
	List(ctx context.Context, q ArticleQuery) ([]*entity.Article, error)
	// Count returns the total number of articles matching the query,
	// ignoring Offset and Limit. Used for pagination metadata.
	Count(ctx context.Context, q ArticleQuery) (int64, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id string) error
}
