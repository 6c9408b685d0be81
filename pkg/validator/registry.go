package validator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/smartvalidations/pkg/logger"
)

// Registry holds named custom patterns. Names are registered once and never
// replaced or removed. A Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
	logger   *slog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithRegistryLogger sets the logger used to report registrations.
func WithRegistryLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		patterns: make(map[string]*regexp.Regexp),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add registers pattern under name. It fails with a *DuplicateRuleError if
// the name is taken, leaving the existing entry untouched.
func (r *Registry) Add(name, pattern string) error {
	re, err := compileRule(name, pattern)
	if err != nil {
		return err
	}

	r.mu.Lock()
	if _, exists := r.patterns[name]; exists {
		r.mu.Unlock()
		return &DuplicateRuleError{Name: name}
	}
	r.patterns[name] = re
	r.mu.Unlock()

	r.logger.Debug("custom rule registered", logger.Rule(name), slog.String("pattern", pattern))
	return nil
}

// Lookup returns the compiled pattern registered under name.
func (r *Registry) Lookup(name string) (*regexp.Regexp, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	re, ok := r.patterns[name]
	return re, ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.patterns)
}

// LoadYAML registers every rule of a YAML document mapping names to patterns:
//
//	zip: '^[0-9]{5}$'
//	sku: '^[A-Z]{3}-\d{4}$'
//
// The load is all-or-nothing: if any entry is invalid or already registered,
// nothing is added.
func (r *Registry) LoadYAML(ctx context.Context, content []byte) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrLoadingRulesCancelled, err)
	}

	var doc map[string]string
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return errors.Join(ErrFailedToLoadRules, err)
	}

	compiled := make(map[string]*regexp.Regexp, len(doc))
	for name, pattern := range doc {
		re, err := compileRule(name, pattern)
		if err != nil {
			return errors.Join(ErrFailedToLoadRules, err)
		}
		compiled[name] = re
	}

	r.mu.Lock()
	for name := range compiled {
		if _, exists := r.patterns[name]; exists {
			r.mu.Unlock()
			return errors.Join(ErrFailedToLoadRules, &DuplicateRuleError{Name: name})
		}
	}
	for name, re := range compiled {
		r.patterns[name] = re
	}
	r.mu.Unlock()

	r.logger.Debug("custom rules loaded", slog.Int("count", len(compiled)))
	return nil
}

// LoadFile reads a YAML rules document from path and registers its rules.
func (r *Registry) LoadFile(ctx context.Context, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Join(ErrFailedToLoadRules, err)
	}
	if err := r.LoadYAML(ctx, content); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func compileRule(name, pattern string) (*regexp.Regexp, error) {
	if name == "" {
		return nil, ErrEmptyRuleName
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Join(ErrInvalidPattern, err)
	}
	return re, nil
}
