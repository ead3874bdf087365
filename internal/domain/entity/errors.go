package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrForbidden indicates the caller is authenticated but not allowed
	// to perform the operation on this entity
	ErrForbidden = errors.New("operation forbidden")

	// ErrInvalidTransition indicates a status change that violates the
	// article lifecycle transition table
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrDuplicate indicates a uniqueness violation (username or email
	// already taken within a role store)
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidCredentials indicates a failed login attempt
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
