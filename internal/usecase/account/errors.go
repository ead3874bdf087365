package account

import "errors"

var (
	// ErrAccountNotFound is returned when a profile lookup finds no account
	// behind an authenticated principal id.
	ErrAccountNotFound = errors.New("account not found")
)
