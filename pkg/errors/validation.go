package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxGraphNameLength        = 128
	maxGraphDescriptionLength = 2048
)

// ValidateGraphName validates the user-supplied name of a saved graph.
//
// Rules:
//   - Not empty or whitespace only
//   - At most 128 characters
//   - No control characters
func ValidateGraphName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "graph name cannot be empty")
	}
	if utf8.RuneCountInString(name) > maxGraphNameLength {
		return New(ErrCodeInvalidInput, "graph name too long (max %d characters)", maxGraphNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains invalid control characters")
		}
	}
	return nil
}

// ValidateGraphDescription validates the free-text description of a saved
// graph. Newlines and tabs are allowed; other control characters are not.
func ValidateGraphDescription(desc string) error {
	if utf8.RuneCountInString(desc) > maxGraphDescriptionLength {
		return New(ErrCodeInvalidInput, "description too long (max %d characters)", maxGraphDescriptionLength)
	}
	for _, r := range desc {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "description contains invalid control characters")
		}
	}
	return nil
}

// ValidateID validates an opaque record or vertex identifier taken from a URL
// or request body. IDs are short tokens without separators or whitespace.
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "id cannot be empty")
	}
	if len(id) > 64 {
		return New(ErrCodeInvalidInput, "id too long (max 64 characters)")
	}
	for _, r := range id {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_') {
			return New(ErrCodeInvalidInput, "id contains invalid character %q", r)
		}
	}
	return nil
}
