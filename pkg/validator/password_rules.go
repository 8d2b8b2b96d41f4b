package validator

import (
	"fmt"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at sign-up.
const MinPasswordLength = 6

// IsValidPassword reports whether password has at least MinPasswordLength characters.
func IsValidPassword(password string) bool {
	return utf8.RuneCountInString(password) >= MinPasswordLength
}

// PasswordsMatch reports whether both values are exactly equal. No trimming or
// case folding is applied.
func PasswordsMatch(password, confirmation string) bool {
	return password == confirmation
}

// MinPasswordLen validates the minimum password length in characters.
func MinPasswordLen(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("password must be at least %d characters long", min),
			TranslationKey: "validation.password_min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// ValidPassword applies the sign-up password policy.
func ValidPassword(field, value string) Rule {
	return MinPasswordLen(field, value, MinPasswordLength)
}

// PasswordConfirmed validates that the confirmation equals the password.
// The error is attached to the confirmation field.
func PasswordConfirmed(field, password, confirmation string) Rule {
	return Rule{
		Check: func() bool {
			return PasswordsMatch(password, confirmation)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "passwords do not match",
			TranslationKey: "validation.passwords_match",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
