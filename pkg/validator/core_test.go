package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartvalidations/pkg/validator"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	e := validator.ValidationError{Field: "email", Message: "Invalid email.", Cause: validator.ErrInvalidFormat}
	assert.Equal(t, "email: Invalid email.", e.Error())
	assert.ErrorIs(t, e, validator.ErrInvalidFormat)

	e.Field = ""
	assert.Equal(t, "Invalid email.", e.Error())
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())
	assert.Equal(t, "validation failed", errs.Error())

	errs.Add(validator.ValidationError{Field: "zip", Message: "Invalid input for zip.", Cause: validator.ErrInvalidFormat})
	errs.Add(validator.ValidationError{Field: "zip", Message: "Custom validation other not found.", Cause: validator.ErrCustomRuleNotFound})
	errs.Add(validator.ValidationError{Field: "phone", Message: "Unsupported region: Mars", Cause: validator.ErrUnsupportedRegion})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("zip"))
	assert.False(t, errs.Has("email"))
	assert.Equal(t, []string{"zip", "phone"}, errs.Fields())
	assert.Len(t, errs.Get("zip"), 2)

	var err error = errs
	assert.ErrorIs(t, err, validator.ErrCustomRuleNotFound)
	assert.ErrorIs(t, err, validator.ErrUnsupportedRegion)

	wrapped := fmt.Errorf("signup: %w", err)
	assert.True(t, validator.IsValidationError(wrapped))
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 3)

	assert.False(t, validator.IsValidationError(errors.New("boom")))
	assert.False(t, validator.IsValidationError(nil))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
}

func TestResult(t *testing.T) {
	t.Parallel()

	ok := validator.ValidateEmail("a@example.com")
	assert.True(t, ok.Valid)
	assert.Empty(t, ok.Message())
	assert.NoError(t, ok.Err())

	bad := validator.ValidateEmail("a@")
	assert.False(t, bad.Valid)
	require.NotNil(t, bad.Error)
	assert.Empty(t, bad.Error.Field)
	assert.Equal(t, "validation.email", bad.Error.TranslationKey)
	assert.True(t, validator.IsValidationError(bad.Err()))
}

func TestDuplicateRuleError(t *testing.T) {
	t.Parallel()

	err := &validator.DuplicateRuleError{Name: "zip"}
	assert.Contains(t, err.Error(), "zip")
	assert.ErrorIs(t, err, validator.ErrDuplicateRule)
	assert.NotErrorIs(t, err, validator.ErrInvalidPattern)
}

func TestRegion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []validator.Region{validator.USA, validator.UK, validator.Spain, validator.Ireland}, validator.Regions())
	for _, r := range validator.Regions() {
		assert.True(t, r.Supported(), r)
		assert.Len(t, r.ISOCode(), 2, r)
	}
	assert.Equal(t, "GB", validator.UK.ISOCode())
	assert.False(t, validator.Region("Mars").Supported())
	assert.Empty(t, validator.Region("Mars").ISOCode())

	tests := []struct {
		in   string
		want validator.Region
	}{
		{"USA", validator.USA},
		{"usa", validator.USA},
		{"US", validator.USA},
		{"gb", validator.UK},
		{" Spain ", validator.Spain},
		{"IE", validator.Ireland},
	}
	for _, tt := range tests {
		got, err := validator.ParseRegion(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := validator.ParseRegion("France")
	assert.ErrorIs(t, err, validator.ErrUnsupportedRegion)
}

func TestRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		rule validator.Rule
		kind validator.RuleKind
		str  string
	}{
		{validator.Email(), validator.KindEmail, "email"},
		{validator.Phone(validator.Ireland), validator.KindPhone, "phone(Ireland)"},
		{validator.Custom("zip"), validator.KindCustom, "custom(zip)"},
		{validator.Date(), validator.KindDate, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.rule.Kind())
			assert.Equal(t, tt.str, tt.rule.String())
		})
	}

	assert.Equal(t, validator.UK, validator.Phone(validator.UK).Region())
	assert.Equal(t, "zip", validator.Custom("zip").Name())
	assert.Equal(t, validator.Email(), validator.Email())
}

func TestValidator_Evaluate(t *testing.T) {
	t.Parallel()

	v := newValidator(t)
	assert.Same(t, v.Registry(), v.Registry())
	assert.True(t, v.Evaluate(validator.Email(), "a@example.com").Valid)
	assert.True(t, v.Evaluate(validator.Phone(validator.UK), "+44 7400 123456").Valid)
	assert.True(t, v.Evaluate(validator.Custom("zip"), "90210").Valid)
	assert.True(t, v.Evaluate(validator.Date(), "2024-02-29").Valid)
	assert.True(t, v.Evaluate(validator.Rule{}, "").Valid)

	assert.False(t, v.Evaluate(validator.Date(), "2023-02-29").Valid)

	shared := validator.NewRegistry()
	require.NoError(t, shared.Add("code", `^[A-Z]{2}$`))
	a := validator.New(validator.WithRegistry(shared))
	b := validator.New(validator.WithRegistry(shared))
	assert.True(t, a.ValidateCustom("AB", "code").Valid)
	require.NoError(t, b.AddCustomValidation("num", `^\d+$`))
	assert.True(t, a.ValidateCustom("12", "num").Valid)
	assert.False(t, validator.New().ValidateCustom("12", "num").Valid)
}
