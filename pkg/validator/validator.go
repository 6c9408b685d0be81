package validator

import (
	"log/slog"
	"slices"

	"github.com/dmitrymomot/smartvalidations/pkg/logger"
)

// Validator evaluates rules against values. It owns a custom rule registry
// and the date layouts used by date rules. A Validator is safe for
// concurrent use.
type Validator struct {
	registry    *Registry
	dateLayouts []string
	logger      *slog.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithRegistry makes the validator consult r for custom rules.
func WithRegistry(r *Registry) Option {
	return func(v *Validator) {
		if r != nil {
			v.registry = r
		}
	}
}

// WithDateLayouts replaces DefaultDateLayouts. Empty input is ignored.
func WithDateLayouts(layouts ...string) Option {
	return func(v *Validator) {
		if len(layouts) > 0 {
			v.dateLayouts = slices.Clone(layouts)
		}
	}
}

// WithLogger sets the logger used to report failed evaluations at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(v *Validator) {
		if l != nil {
			v.logger = l
		}
	}
}

// New creates a Validator. Without WithRegistry it gets its own empty registry.
func New(opts ...Option) *Validator {
	v := &Validator{
		dateLayouts: slices.Clone(DefaultDateLayouts),
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.registry == nil {
		v.registry = NewRegistry(WithRegistryLogger(v.logger))
	}
	return v
}

// Registry returns the custom rule registry consulted by the validator.
func (v *Validator) Registry() *Registry {
	return v.registry
}

// AddCustomValidation registers a custom pattern. See Registry.Add.
func (v *Validator) AddCustomValidation(name, pattern string) error {
	return v.registry.Add(name, pattern)
}

func (v *Validator) ValidateEmail(value string) Result {
	return ValidateEmail(value)
}

func (v *Validator) ValidatePhoneNumber(value string, region Region) Result {
	return ValidatePhoneNumber(value, region)
}

func (v *Validator) ValidateDate(value string) Result {
	return validateDate(value, v.dateLayouts)
}

func (v *Validator) ValidateCustom(value, name string) Result {
	return ValidateCustom(v.registry, value, name)
}

// Evaluate applies a single rule to value.
func (v *Validator) Evaluate(rule Rule, value string) Result {
	var res Result
	switch rule.kind {
	case KindEmail:
		res = v.ValidateEmail(value)
	case KindPhone:
		res = v.ValidatePhoneNumber(value, rule.region)
	case KindCustom:
		res = v.ValidateCustom(value, rule.name)
	case KindDate:
		res = v.ValidateDate(value)
	default:
		// The zero Rule has no evaluator and never fails.
		return valid()
	}

	if !res.Valid {
		v.logger.Debug("rule failed",
			logger.Rule(rule.String()),
			logger.Error(res.Error),
		)
	}
	return res
}
