// Package auth provides the principal resolver and credential policy used by
// the access control layer. It is framework-agnostic: HTTP concerns live in
// the handler layer.
package auth

import (
	"context"
	"fmt"

	"pressroom/internal/domain/entity"
	"pressroom/internal/repository"
)

// Resolver turns a verified principal ID into a concrete identity by looking
// it up in the store matching the required role. Admins and users are disjoint
// stores; for RequireAny the admin store is consulted first, so an admin
// identity deterministically wins should an ID collision ever occur.
type Resolver struct {
	Admins repository.AdminRepository
	Users  repository.UserRepository
}

// NewResolver creates a resolver over the two identity stores.
func NewResolver(admins repository.AdminRepository, users repository.UserRepository) *Resolver {
	return &Resolver{Admins: admins, Users: users}
}

// Resolve looks up the principal ID against the required role.
// Returns entity.ErrNotFound when the ID is absent from every store the
// requirement allows. Storage faults are wrapped and passed through so the
// caller can classify them as internal failures.
func (r *Resolver) Resolve(ctx context.Context, principalID string, req entity.Requirement) (entity.Principal, error) {
	if req == entity.RequireAdmin || req == entity.RequireAny {
		admin, err := r.Admins.GetByID(ctx, principalID)
		if err != nil {
			return entity.Principal{}, fmt.Errorf("resolve admin: %w", err)
		}
		if admin != nil {
			return entity.AdminPrincipal(admin), nil
		}
		if req == entity.RequireAdmin {
			return entity.Principal{}, entity.ErrNotFound
		}
	}

	user, err := r.Users.GetByID(ctx, principalID)
	if err != nil {
		return entity.Principal{}, fmt.Errorf("resolve user: %w", err)
	}
	if user != nil {
		return entity.UserPrincipal(user), nil
	}
	return entity.Principal{}, entity.ErrNotFound
}
