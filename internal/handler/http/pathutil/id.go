package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// ExtractID extracts a UUID article/account ID from a URL path.
// It removes the specified prefix and validates the remaining segment.
//
// Example:
//
//	id, err := ExtractID("/articles/0c6cf3e6-.../", "/articles/")
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	id = strings.TrimSuffix(id, "/")
	if id == "" || strings.ContainsRune(id, '/') {
		return "", ErrInvalidID
	}
	if err := uuid.Validate(id); err != nil {
		return "", ErrInvalidID
	}
	return id, nil
}

// ExtractIDAndAction splits a path like /admin/articles/<id>/approve into
// the ID and the trailing action segment.
func ExtractIDAndAction(path, prefix string) (id, action string, err error) {
	rest := strings.TrimPrefix(path, prefix)
	rest = strings.TrimSuffix(rest, "/")
	id, action, found := strings.Cut(rest, "/")
	if !found {
		action = ""
	}
	if id == "" || strings.ContainsRune(action, '/') {
		return "", "", ErrInvalidID
	}
	if err := uuid.Validate(id); err != nil {
		return "", "", ErrInvalidID
	}
	return id, action, nil
}
