package structtag

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/smartvalidations/pkg/validator"
)

// TagName is the struct tag read by SchemaOf.
const TagName = "smart"

// SchemaOf builds a validator.Schema from `smart` struct tags. Rules are
// separated by ";" and evaluated in the order written; fields are visited in
// declaration order. Field names come from the `json` tag when present.
//
//	type Contact struct {
//	    Email string `json:"email" smart:"email"`
//	    Phone string `json:"phone" smart:"phone=USA"`
//	    Zip   string `json:"zip"   smart:"custom=zip"`
//	    Born  string `json:"born"  smart:"date"`
//	}
//
// Tags are parsed once here; validating records does not use reflection on
// the tags again.
func SchemaOf[T any]() (*validator.Schema[T], error) {
	typ := reflect.TypeFor[T]()
	ptr := false
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
		ptr = true
	}
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %s", ErrNotStruct, typ)
	}

	schema := validator.NewSchema[T]()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		tag, ok := field.Tag.Lookup(TagName)
		if !ok || tag == "-" || !field.IsExported() {
			continue
		}

		rules, err := ParseRules(tag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}

		index := field.Index
		schema.Value(fieldName(field), func(rec T) any {
			rv := reflect.ValueOf(rec)
			if ptr {
				if rv.IsNil() {
					return nil
				}
				rv = rv.Elem()
			}
			return rv.FieldByIndex(index).Interface()
		}, rules...)
	}
	return schema, nil
}

// MustSchemaOf is like SchemaOf but panics on error. Use it for package level schemas.
func MustSchemaOf[T any]() *validator.Schema[T] {
	s, err := SchemaOf[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// ParseRules parses a tag value such as "email;phone=UK;custom=zip".
func ParseRules(tag string) ([]validator.Rule, error) {
	var rules []validator.Rule
	for part := range strings.SplitSeq(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, param, _ := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		param = strings.TrimSpace(param)

		switch strings.ToLower(name) {
		case "email":
			rules = append(rules, validator.Email())
		case "date":
			rules = append(rules, validator.Date())
		case "phone":
			if param == "" {
				return nil, fmt.Errorf("%w: phone requires a region", ErrInvalidTag)
			}
			// Unknown regions are kept as-is and reported when evaluated.
			region, err := validator.ParseRegion(param)
			if err != nil {
				region = validator.Region(param)
			}
			rules = append(rules, validator.Phone(region))
		case "custom":
			if param == "" {
				return nil, fmt.Errorf("%w: custom requires a rule name", ErrInvalidTag)
			}
			rules = append(rules, validator.Custom(param))
		default:
			return nil, fmt.Errorf("%w: unknown rule %q", ErrInvalidTag, name)
		}
	}
	return rules, nil
}

func fieldName(f reflect.StructField) string {
	if tag, ok := f.Tag.Lookup("json"); ok {
		if name, _, _ := strings.Cut(tag, ","); name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}
