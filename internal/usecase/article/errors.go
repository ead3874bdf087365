// Package article implements the article lifecycle engine: the use cases that
// govern an article's status field and which transitions each role may invoke.
// All status changes go through the transition table in the entity package.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found,
	// or is not visible to the caller (public reads of unpublished articles).
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is empty
	// or malformed.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
