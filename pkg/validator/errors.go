package validator

import (
	"errors"
	"fmt"
)

// Validation outcomes. They travel inside a Result and are never returned
// as hard errors by the rule evaluators.
var (
	// ErrInvalidFormat is the outcome of a value that does not match its rule.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrUnsupportedRegion is the outcome of a phone rule bound to a region
	// outside the supported set.
	ErrUnsupportedRegion = errors.New("unsupported region")

	// ErrCustomRuleNotFound is the outcome of a custom rule whose name is not registered.
	ErrCustomRuleNotFound = errors.New("custom rule not found")
)

// Setup errors. These indicate misconfiguration and are returned to the caller.
var (
	// ErrDuplicateRule is matched by DuplicateRuleError via errors.Is.
	ErrDuplicateRule = errors.New("custom rule already registered")

	// ErrInvalidPattern is returned when a custom rule pattern does not compile.
	ErrInvalidPattern = errors.New("invalid custom rule pattern")

	// ErrEmptyRuleName is returned when a custom rule is registered without a name.
	ErrEmptyRuleName = errors.New("custom rule name is empty")

	// ErrFailedToLoadRules is returned when a custom rules document cannot be read or parsed.
	ErrFailedToLoadRules = errors.New("failed to load custom rules")

	// ErrLoadingRulesCancelled is returned when rule loading is interrupted by the context.
	ErrLoadingRulesCancelled = errors.New("loading custom rules cancelled")

	// ErrInvalidPhoneNumber is returned by FormatE164 for numbers that cannot be normalised.
	ErrInvalidPhoneNumber = errors.New("invalid phone number")
)

// DuplicateRuleError reports an attempt to register a custom rule name twice.
type DuplicateRuleError struct {
	Name string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("custom rule %q already registered", e.Name)
}

// Is reports whether target is ErrDuplicateRule.
func (e *DuplicateRuleError) Is(target error) bool {
	return target == ErrDuplicateRule
}
