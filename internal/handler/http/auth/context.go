// Package auth provides the HTTP access control guard: it extracts and
// verifies the bearer token, resolves the principal against the required
// role, and attaches it to the request context.
package auth

import (
	"context"

	"pressroom/internal/domain/entity"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const principalKey contextKey = "principal"

// WithPrincipal attaches a resolved principal to the context.
func WithPrincipal(ctx context.Context, p entity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom retrieves the resolved principal from the context.
func PrincipalFrom(ctx context.Context) (entity.Principal, bool) {
	p, ok := ctx.Value(principalKey).(entity.Principal)
	return p, ok
}

// AdminFrom returns the admin identity from the context, or nil when the
// request was not resolved to an admin.
func AdminFrom(ctx context.Context) *entity.Admin {
	if p, ok := PrincipalFrom(ctx); ok && p.Role == entity.RoleAdmin {
		return p.Admin
	}
	return nil
}

// UserFrom returns the user identity from the context, or nil when the
// request was not resolved to a user.
func UserFrom(ctx context.Context) *entity.User {
	if p, ok := PrincipalFrom(ctx); ok && p.Role == entity.RoleUser {
		return p.User
	}
	return nil
}
