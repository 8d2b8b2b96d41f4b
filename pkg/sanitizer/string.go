package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// CollapseWhitespace replaces every run of whitespace with a single space and
// trims the ends.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeUnicode converts s to Unicode NFC so that a name typed with a
// combining accent compares equal to its precomposed form.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars drops non-printable control characters. Tabs and
// newlines become spaces.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, s)
}

// PersonName prepares a full name for storage: NFC, no control characters,
// single spaces between words. Letter case is preserved.
func PersonName(s string) string {
	return Apply(s, NormalizeUnicode, RemoveControlChars, CollapseWhitespace)
}
