package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cidadaoativo/cidadao/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "cpf",
			Message: "is required",
		})
		assert.Equal(t, "validation failed: cpf: is required", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "cpf", Message: "is required"})
		errs.Add(validator.ValidationError{Field: "password", Message: "too short"})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "cpf: is required")
		assert.Contains(t, errorMsg, "password: too short")
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "cpf", Message: "is required", TranslationKey: "validation.required"},
		{Field: "password", Message: "too short", TranslationKey: "validation.password_min_length"},
		{Field: "password", Message: "does not match", TranslationKey: "validation.passwords_match"},
	}

	assert.True(t, errs.Has("cpf"))
	assert.False(t, errs.Has("fullName"))
	assert.Equal(t, []string{"too short", "does not match"}, errs.Get("password"))
	assert.Len(t, errs.GetErrors("password"), 2)
	assert.Equal(t, []string{"cpf", "password"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.True(t, validator.ValidationErrors{}.IsEmpty())
}

func TestApply(t *testing.T) {
	t.Run("returns nil when all rules pass", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("cpf", "111.444.777-35"),
			validator.ValidCPF("cpf", "111.444.777-35"),
		)
		assert.NoError(t, err)
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(
			validator.Required("cpf", ""),
			validator.ValidCPF("cpf", ""),
			validator.ValidPassword("password", "123"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
		assert.Equal(t, "validation.cpf", verrs[1].TranslationKey)
		assert.Equal(t, "validation.password_min_length", verrs[2].TranslationKey)
	})

	t.Run("skips rules without a check", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.Rule{}))
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		err := validator.Apply(validator.Required("cpf", " "))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestFirst(t *testing.T) {
	t.Run("reports only the first failure", func(t *testing.T) {
		err := validator.Apply(
			validator.First(
				validator.Required("cpf", ""),
				validator.ValidCPF("cpf", ""),
			),
		)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.required", verrs[0].TranslationKey)
	})

	t.Run("falls through to later rules", func(t *testing.T) {
		err := validator.Apply(
			validator.First(
				validator.Required("cpf", "123"),
				validator.ValidCPF("cpf", "123"),
			),
		)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "validation.cpf", verrs[0].TranslationKey)
	})

	t.Run("passes when every rule passes", func(t *testing.T) {
		err := validator.Apply(
			validator.First(
				validator.Required("cpf", "11144477735"),
				validator.ValidCPF("cpf", "11144477735"),
			),
		)
		assert.NoError(t, err)
	})

	t.Run("empty group passes", func(t *testing.T) {
		assert.NoError(t, validator.Apply(validator.First()))
	})

	t.Run("reusable across evaluations", func(t *testing.T) {
		value := ""
		rule := validator.First(
			validator.Rule{
				Check: func() bool { return value != "" },
				Error: validator.ValidationError{Field: "x", TranslationKey: "first"},
			},
			validator.Rule{
				Check: func() bool { return value == "ok" },
				Error: validator.ValidationError{Field: "x", TranslationKey: "second"},
			},
		)

		verrs := validator.ExtractValidationErrors(validator.Apply(rule))
		require.Len(t, verrs, 1)
		assert.Equal(t, "first", verrs[0].TranslationKey)

		value = "nope"
		verrs = validator.ExtractValidationErrors(validator.Apply(rule))
		require.Len(t, verrs, 1)
		assert.Equal(t, "second", verrs[0].TranslationKey)

		value = "ok"
		assert.NoError(t, validator.Apply(rule))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))

	wrapped := fmt.Errorf("register: %w", validator.Apply(validator.Required("cpf", "")))
	verrs := validator.ExtractValidationErrors(wrapped)
	require.Len(t, verrs, 1)
	assert.Equal(t, "cpf", verrs[0].Field)

	assert.True(t, validator.IsValidationError(wrapped))
	assert.False(t, validator.IsValidationError(nil))
	assert.False(t, validator.IsValidationError(errors.New("boom")))
}
