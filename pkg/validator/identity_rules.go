package validator

import (
	"strings"
	"unicode/utf8"

	"github.com/cidadaoativo/cidadao/pkg/cpf"
)

const (
	// MinNameWords is the number of words a full name must have.
	MinNameWords = 2

	// MinNameWordLength is the minimum number of characters per name word.
	MinNameWordLength = 2
)

// IsValidCPF reports whether value is a CPF with valid check digits.
// Mask characters are ignored.
func IsValidCPF(value string) bool {
	return cpf.IsValid(value)
}

// IsValidFullName requires at least two whitespace-separated words of two or
// more characters each.
func IsValidFullName(name string) bool {
	if IsEmpty(name) {
		return false
	}

	words := strings.Fields(name)
	if len(words) < MinNameWords {
		return false
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) < MinNameWordLength {
			return false
		}
	}
	return true
}

// ValidCPF validates a CPF number, masked or not.
func ValidCPF(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidCPF(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid CPF",
			TranslationKey: "validation.cpf",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidFullName validates a person's full name (first and last name).
func ValidFullName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsValidFullName(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain first and last name",
			TranslationKey: "validation.full_name",
			TranslationValues: map[string]any{
				"field":     field,
				"min_words": MinNameWords,
			},
		},
	}
}
