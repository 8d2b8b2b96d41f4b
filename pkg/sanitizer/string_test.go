package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cidadaoativo/cidadao/pkg/sanitizer"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hello world", sanitizer.Trim("  hello world  "))
	assert.Equal(t, "hello", sanitizer.Trim("\t\nhello\n\t"))
	assert.Equal(t, "", sanitizer.Trim("   "))
	assert.Equal(t, "hello  world", sanitizer.Trim("  hello  world  "))
}

func TestCollapseWhitespace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "multiple spaces", input: "Maria   da  Silva", expected: "Maria da Silva"},
		{name: "tabs and newlines", input: "Maria\t\nSilva", expected: "Maria Silva"},
		{name: "leading and trailing", input: "  Maria Silva  ", expected: "Maria Silva"},
		{name: "empty", input: "", expected: ""},
		{name: "whitespace only", input: " \t ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, sanitizer.CollapseWhitespace(tt.input))
		})
	}
}

func TestNormalizeUnicode(t *testing.T) {
	t.Parallel()

	decomposed := "Jose\u0301"
	precomposed := "Jos\u00e9"
	assert.NotEqual(t, precomposed, decomposed)
	assert.Equal(t, precomposed, sanitizer.NormalizeUnicode(decomposed))
	assert.Equal(t, "plain", sanitizer.NormalizeUnicode("plain"))
}

func TestRemoveControlChars(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Maria Silva", sanitizer.RemoveControlChars("Maria\x00 Silva\x07"))
	assert.Equal(t, "a b c", sanitizer.RemoveControlChars("a\tb\nc"))
}

func TestPersonName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Jos\u00e9 da Silva", sanitizer.PersonName("  Jose\u0301 \t da\x00   Silva "))
	assert.Equal(t, "maria silva", sanitizer.PersonName("maria silva"))
	assert.Equal(t, "", sanitizer.PersonName("   "))
}
