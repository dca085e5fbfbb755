package entity

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength = 255
	maxCodeLength  = 35
	maxNameLength  = 255
)

// requireText validates a mandatory, length-bounded text field.
func requireText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "is required"}
	}
	if utf8.RuneCountInString(value) > maxLen {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must not exceed %d characters", maxLen),
		}
	}
	return nil
}
