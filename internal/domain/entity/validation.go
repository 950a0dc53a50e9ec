package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RequireString validates that a string field is non-blank and within maxLen runes.
// Returns a ValidationError if the field is empty, whitespace-only, or too long.
func RequireString(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	return MaxLength(field, value, maxLen)
}

// MaxLength validates that a string field does not exceed maxLen runes.
// Empty values pass; pair with RequireString for mandatory fields.
func MaxLength(field, value string, maxLen int) error {
	if utf8.RuneCountInString(value) > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxLen),
		}
	}
	return nil
}
