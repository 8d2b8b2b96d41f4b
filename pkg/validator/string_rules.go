package validator

import (
	"strings"
	"unicode/utf8"
)

// IsEmpty reports whether value is empty or holds only whitespace.
func IsEmpty(value string) bool {
	return strings.TrimSpace(value) == ""
}

// Required fails when the value is empty or whitespace-only.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !IsEmpty(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MaxLen limits the value to max characters (runes).
func MaxLen(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        "value is too long",
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
