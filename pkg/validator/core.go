package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation failure with translation support.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Cause is one of ErrInvalidFormat, ErrUnsupportedRegion or ErrCustomRuleNotFound.
	Cause error
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Cause
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, err.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes every failure so errors.Is can match outcome sentinels.
func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, err := range ve {
		errs = append(errs, err)
	}
	return errs
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Result is the outcome of evaluating one rule or a whole entity.
// Error is nil if and only if Valid is true.
type Result struct {
	Valid bool
	Error *ValidationError
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(cause error, key, message string, values map[string]any) Result {
	return Result{
		Error: &ValidationError{
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
			Cause:             cause,
		},
	}
}

// Message returns the failure message, or an empty string for a valid result.
func (r Result) Message() string {
	if r.Error == nil {
		return ""
	}
	return r.Error.Message
}

// Err converts the result into an error value. It returns nil when the result is valid.
func (r Result) Err() error {
	if r.Valid || r.Error == nil {
		return nil
	}
	return ValidationErrors{*r.Error}
}

// withField returns a copy of r attributed to the given field.
func (r Result) withField(field string) Result {
	if r.Error == nil {
		return r
	}
	e := *r.Error
	e.Field = field
	values := make(map[string]any, len(e.TranslationValues)+1)
	for k, v := range e.TranslationValues {
		values[k] = v
	}
	values["field"] = field
	e.TranslationValues = values
	r.Error = &e
	return r
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
