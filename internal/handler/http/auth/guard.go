package auth

import (
	"errors"
	"net/http"
	"strings"

	"pressroom/internal/domain/entity"
	"pressroom/internal/handler/http/respond"
	"pressroom/internal/observability/metrics"
	authsvc "pressroom/internal/service/auth"
	"pressroom/internal/token"
)

// Guard gates handlers behind a role requirement. A missing credential is
// 401, a bad or expired token is 403 (the two are distinguished in the
// message), an unknown principal is 401, and a store fault is 500.
type Guard struct {
	Tokens   *token.Service
	Resolver *authsvc.Resolver
}

// NewGuard creates a guard over the token service and principal resolver.
func NewGuard(tokens *token.Service, resolver *authsvc.Resolver) *Guard {
	return &Guard{Tokens: tokens, Resolver: resolver}
}

// Require wraps next with the given role requirement.
func (g *Guard) Require(req entity.Requirement, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			metrics.RecordGuardDecision("unauthenticated")
			respond.Fail(w, http.StatusUnauthorized, "authentication required")
			return
		}

		principalID, err := g.Tokens.Verify(raw)
		if err != nil {
			metrics.RecordGuardDecision("invalid_token")
			msg := "invalid token"
			if errors.Is(err, token.ErrTokenExpired) {
				msg = "token expired"
			}
			respond.Fail(w, http.StatusForbidden, msg)
			return
		}

		principal, err := g.Resolver.Resolve(r.Context(), principalID, req)
		if err != nil {
			if errors.Is(err, entity.ErrNotFound) {
				metrics.RecordGuardDecision("unknown_principal")
				respond.Fail(w, http.StatusUnauthorized, "authentication required")
				return
			}
			metrics.RecordGuardDecision("error")
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		metrics.RecordGuardDecision("allowed")
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// Admin gates next behind the admin role.
func (g *Guard) Admin(next http.Handler) http.Handler {
	return g.Require(entity.RequireAdmin, next)
}

// User gates next behind the user role.
func (g *Guard) User(next http.Handler) http.Handler {
	return g.Require(entity.RequireUser, next)
}

// Any gates next behind either role.
func (g *Guard) Any(next http.Handler) http.Handler {
	return g.Require(entity.RequireAny, next)
}

// bearerToken extracts the token from the Authorization header.
// The scheme comparison is case-insensitive per RFC 7235.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, rest, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}
