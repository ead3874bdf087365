// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and the principal types,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// Status represents the lifecycle state of an article.
type Status string

// Article lifecycle states. Every article starts as pending and moves
// through the transition table below; no other values are valid.
const (
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// transitions is the single authoritative transition table for article
// statuses. All moderation operations consult this table; handlers must not
// compare status strings themselves.
//
//	pending   -> published  (admin approve)
//	pending   -> rejected   (admin reject)
//	published -> rejected   (admin unpublish)
//	rejected  -> pending    (owner edit resubmits)
var transitions = map[Status][]Status{
	StatusPending:   {StatusPublished, StatusRejected},
	StatusPublished: {StatusRejected},
	StatusRejected:  {StatusPending},
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether the state machine permits moving from s to next.
func (s Status) CanTransition(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseStatus validates a raw status string. Returns the parsed status and
// false if the value is not part of the lifecycle enum.
func ParseStatus(raw string) (Status, bool) {
	s := Status(raw)
	return s, s.Valid()
}

// Article represents a submitted content unit owned by exactly one user.
// Ownership is immutable after creation. PublishedAt is only meaningful for
// articles that are or were published.
type Article struct {
	ID               string
	AuthorID         string
	CoverImage       string
	Title            string
	ShortDescription string
	FullDescription  string
	Categories       []string
	Status           Status
	RejectReason     string
	PublishedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOwnedBy reports whether the given user ID owns this article.
func (a *Article) IsOwnedBy(userID string) bool {
	return a.AuthorID == userID
}
