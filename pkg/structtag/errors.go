package structtag

import "errors"

var (
	// ErrInvalidTag is returned when a `smart` struct tag cannot be parsed.
	ErrInvalidTag = errors.New("invalid validation tag")

	// ErrNotStruct is returned when SchemaOf is used with a non-struct type.
	ErrNotStruct = errors.New("schema type must be a struct")
)
