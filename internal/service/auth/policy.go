package auth

import (
	"fmt"
	"strings"

	"pressroom/internal/domain/entity"
)

// defaultWeakPasswords contains common weak passwords that must be rejected
// at registration. The list can be extended via the security config file.
var defaultWeakPasswords = []string{
	"password",
	"123456",
	"12345678",
	"123456789",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"admin",
	"admin123",
	"password1",
	"password123",
	"secret",
	"test123",
	"default",
}

// PasswordPolicy validates candidate passwords at registration time.
type PasswordPolicy struct {
	MinLength     int
	WeakPasswords []string
}

// DefaultPasswordPolicy returns the policy applied when the security config
// does not override it.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     8,
		WeakPasswords: defaultWeakPasswords,
	}
}

// Validate checks a candidate password against the policy.
// Returns a ValidationError safe to surface to the client.
func (p PasswordPolicy) Validate(password string) error {
	if password == "" {
		return &entity.ValidationError{Field: "password", Message: "is required"}
	}
	if len(password) < p.MinLength {
		return &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", p.MinLength),
		}
	}

	lower := strings.ToLower(password)
	weak := p.WeakPasswords
	if len(weak) == 0 {
		weak = defaultWeakPasswords
	}
	for _, w := range weak {
		if lower == w {
			return &entity.ValidationError{Field: "password", Message: "is too common"}
		}
	}
	return nil
}
