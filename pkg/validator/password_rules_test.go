package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidadaoativo/cidadao/pkg/validator"
)

func TestIsValidPassword(t *testing.T) {
	t.Parallel()

	assert.False(t, validator.IsValidPassword(""))
	assert.False(t, validator.IsValidPassword("abc12"))
	assert.True(t, validator.IsValidPassword("abc123"))
	assert.True(t, validator.IsValidPassword("      "))
	assert.True(t, validator.IsValidPassword("senhaçã"))
	// Five runes, more than six bytes.
	assert.False(t, validator.IsValidPassword("ãããããã"[:10]))
}

func TestPasswordsMatch(t *testing.T) {
	t.Parallel()

	assert.True(t, validator.PasswordsMatch("a", "a"))
	assert.True(t, validator.PasswordsMatch("", ""))
	assert.False(t, validator.PasswordsMatch("a", "b"))
	assert.False(t, validator.PasswordsMatch("Senha", "senha"))
	assert.False(t, validator.PasswordsMatch("senha", "senha "))
}

func TestValidPassword(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.ValidPassword("password", "abc123")))

	err := validator.Apply(validator.ValidPassword("password", "abc"))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "validation.password_min_length", verrs[0].TranslationKey)
	assert.Equal(t, validator.MinPasswordLength, verrs[0].TranslationValues["min"])
}

func TestMinPasswordLen(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.MinPasswordLen("password", "12345678", 8)))
	assert.Error(t, validator.Apply(validator.MinPasswordLen("password", "1234567", 8)))
}

func TestPasswordConfirmed(t *testing.T) {
	t.Parallel()

	assert.NoError(t, validator.Apply(validator.PasswordConfirmed("confirmPassword", "abc123", "abc123")))

	err := validator.Apply(validator.PasswordConfirmed("confirmPassword", "abc123", "abc124"))
	verrs := validator.ExtractValidationErrors(err)
	require.Len(t, verrs, 1)
	assert.Equal(t, "confirmPassword", verrs[0].Field)
	assert.Equal(t, "validation.passwords_match", verrs[0].TranslationKey)
}
