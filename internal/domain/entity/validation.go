package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field length limits for article content.
const (
	// MaxTitleLength caps article titles.
	MaxTitleLength = 200
	// MaxShortDescriptionLength caps the list-view description.
	MaxShortDescriptionLength = 500
	// maxCategories caps the number of category tags per article.
	maxCategories = 20
)

// ValidateTitle checks that a title is present and within the length cap.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	// Caps are in characters, not bytes; multibyte titles count per rune.
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", MaxTitleLength),
		}
	}
	return nil
}

// ValidateShortDescription checks the short description length cap.
// An empty short description is allowed.
func ValidateShortDescription(desc string) error {
	if utf8.RuneCountInString(desc) > MaxShortDescriptionLength {
		return &ValidationError{
			Field:   "shortDescription",
			Message: fmt.Sprintf("must not exceed %d characters", MaxShortDescriptionLength),
		}
	}
	return nil
}

// NormalizeCategories lowercases, trims, and deduplicates category tags,
// preserving first-seen order. Empty tags are dropped.
func NormalizeCategories(categories []string) ([]string, error) {
	if len(categories) > maxCategories {
		return nil, &ValidationError{
			Field:   "categories",
			Message: fmt.Sprintf("must not exceed %d tags", maxCategories),
		}
	}
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		tag := strings.ToLower(strings.TrimSpace(c))
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out, nil
}

// ValidateEmail performs a minimal shape check on an email address.
// Full RFC validation is deliberately out of scope; uniqueness is enforced
// by the persistence layer.
func ValidateEmail(email string) error {
	if email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 || strings.ContainsAny(email, " \t") {
		return &ValidationError{Field: "email", Message: "is not a valid address"}
	}
	return nil
}

// ValidateUsername checks that a username is present and of reasonable length.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	if utf8.RuneCountInString(username) > 64 {
		return &ValidationError{Field: "username", Message: "must not exceed 64 characters"}
	}
	return nil
}
