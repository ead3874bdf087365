// Package token implements the signed, time-limited identity assertions used
// to authenticate requests. Tokens are stateless: validity is solely a matter
// of signature and expiry, there is no server-side revocation list.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Verification failure kinds. Expired and malformed tokens are distinguished
// so the transport can report them separately, but both block access.
var (
	// ErrTokenExpired indicates the embedded expiry has passed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMalformed indicates a structurally invalid token or a bad
	// signature.
	ErrTokenMalformed = errors.New("token malformed")
)

// DefaultTTL is the token lifetime used when none is configured.
const DefaultTTL = 24 * time.Hour

// Claims binds a principal ID to the registered expiry claim.
type Claims struct {
	jwt.RegisteredClaims
	PrincipalID string `json:"pid"`
}

// Service issues and verifies identity tokens. The signing key is process-wide
// configuration loaded once at startup; rotation is out of scope.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// New creates a token service with the given signing secret and lifetime.
// A non-positive ttl falls back to DefaultTTL.
func New(secret []byte, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{secret: secret, ttl: ttl}
}

// Issue produces a signed token embedding the principal ID and an absolute
// expiry. Pure computation: no state is recorded anywhere.
func (s *Service) Issue(principalID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		PrincipalID: principalID,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded principal ID.
// Returns ErrTokenExpired or ErrTokenMalformed; there are no partial-validity
// states.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		// Reject algorithm confusion: HS256 only.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenMalformed
	}
	if !tok.Valid || claims.PrincipalID == "" {
		return "", ErrTokenMalformed
	}
	return claims.PrincipalID, nil
}

// TTL returns the configured token lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
