package validator

import (
	"fmt"
	"reflect"
	"slices"
	"time"
)

// FieldBinding associates a field name with the rules declared for it.
type FieldBinding struct {
	Field string
	Rules []Rule
}

type binding[T any] struct {
	field string
	get   func(T) string
	rules []Rule
}

// Schema describes what to check on records of type T. Build it once per
// type and reuse it for every record:
//
//	var userSchema = validator.NewSchema[User]().
//	    Field("email", func(u User) string { return u.Email }, validator.Email()).
//	    Field("phone", func(u User) string { return u.Phone }, validator.Phone(validator.USA))
//
// Bindings are evaluated in declaration order, and the rules of a binding in
// the order they were given.
type Schema[T any] struct {
	bindings []binding[T]
}

// NewSchema returns an empty schema for T.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{}
}

// Field binds rules to a string field read by get.
// Panics if get is nil: schemas are built at startup and a missing accessor
// is a programming error.
func (s *Schema[T]) Field(name string, get func(T) string, rules ...Rule) *Schema[T] {
	if get == nil {
		panic(fmt.Sprintf("validator: nil accessor for field %q", name))
	}
	s.bindings = append(s.bindings, binding[T]{
		field: name,
		get:   get,
		rules: slices.Clone(rules),
	})
	return s
}

// Value binds rules to a field of any type. The value is converted to a
// string before evaluation; nil values become the empty string. Times are
// formatted as RFC 3339 so they satisfy Date, and the zero time counts as unset.
func (s *Schema[T]) Value(name string, get func(T) any, rules ...Rule) *Schema[T] {
	if get == nil {
		panic(fmt.Sprintf("validator: nil accessor for field %q", name))
	}
	return s.Field(name, func(rec T) string { return stringify(get(rec)) }, rules...)
}

// Bindings returns a copy of the declared field bindings in order.
func (s *Schema[T]) Bindings() []FieldBinding {
	out := make([]FieldBinding, 0, len(s.bindings))
	for _, b := range s.bindings {
		out = append(out, FieldBinding{Field: b.field, Rules: slices.Clone(b.rules)})
	}
	return out
}

// Len returns the number of bindings.
func (s *Schema[T]) Len() int {
	return len(s.bindings)
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case *string:
		if val == nil {
			return ""
		}
		return *val
	case time.Time:
		return formatTime(val)
	case *time.Time:
		if val == nil {
			return ""
		}
		return formatTime(*val)
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return val.String()
	}

	if isNilPointer(v) {
		return ""
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		return fmt.Sprint(rv.Elem().Interface())
	}
	return fmt.Sprint(v)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
