package repository

import (
	"context"
	"time"

	"pressroom/internal/domain/entity"
)

// AdminRepository provides durable storage for administrator identities.
// Lookup methods return (nil, nil) when no row matches.
type AdminRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	GetByEmail(ctx context.Context, email string) (*entity.Admin, error)
	// Create persists a new admin. Returns entity.ErrDuplicate when the
	// username or email is already taken within the admin store.
	Create(ctx context.Context, admin *entity.Admin) error
}

// UserRepository provides durable storage for author identities.
// Lookup methods return (nil, nil) when no row matches.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// Create persists a new user. Returns entity.ErrDuplicate when the
	// username or email is already taken within the user store.
	Create(ctx context.Context, user *entity.User) error
	// CountCreatedSince returns the number of users registered at or
	// after the given instant. Used by the analytics aggregator.
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
