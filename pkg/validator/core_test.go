package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fiscalkit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "tax_code", Message: "has an invalid length"})
		errs.Add(validator.ValidationError{Field: "iban", Message: "must be an Italian IBAN"})

		assert.Equal(t,
			"validation failed: tax_code: has an invalid length; iban: must be an Italian IBAN",
			errs.Error(),
		)
	})
}

func TestValidationErrors_Accessors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "tax_code", Code: "required", Message: "field is required"})
	errs.Add(validator.ValidationError{Field: "iban", Code: "bad_length", Message: "has an invalid length"})
	errs.Add(validator.ValidationError{Field: "tax_code", Code: "mismatch", Message: "does not match the personal data"})

	assert.True(t, errs.Has("tax_code"))
	assert.False(t, errs.Has("vat_number"))
	assert.Equal(t, []string{"field is required", "does not match the personal data"}, errs.Get("tax_code"))
	assert.Equal(t, []string{"required", "mismatch"}, errs.Codes("tax_code"))
	assert.Len(t, errs.GetErrors("iban"), 1)
	assert.Equal(t, []string{"tax_code", "iban"}, errs.Fields())
	assert.False(t, errs.IsEmpty())
	assert.Nil(t, errs.Get("vat_number"))
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{Check: func() bool { return true }}
	fail := func(field string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: "bad"},
		}
	}

	t.Run("nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(fail("a"), pass, fail("b"))
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "a", verrs[0].Field)
		assert.Equal(t, "b", verrs[1].Field)
	})

	t.Run("matches ErrValidationFailed", func(t *testing.T) {
		err := validator.Apply(fail("a"))
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		wrapped := fmt.Errorf("save supplier: %w", err)
		assert.ErrorIs(t, wrapped, validator.ErrValidationFailed)
		assert.True(t, validator.IsValidationError(wrapped))
		assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
	})

	t.Run("other errors are not validation errors", func(t *testing.T) {
		err := errors.New("boom")
		assert.False(t, validator.IsValidationError(err))
		assert.Nil(t, validator.ExtractValidationErrors(err))
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})
}

func TestWhen(t *testing.T) {
	t.Parallel()

	fail := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: "iban"},
	}

	assert.Error(t, validator.Apply(validator.When(true, fail)))
	assert.NoError(t, validator.Apply(validator.When(false, fail)))
}
