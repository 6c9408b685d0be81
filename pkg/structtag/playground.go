package structtag

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	playground "github.com/go-playground/validator/v10"

	"github.com/dmitrymomot/smartvalidations/pkg/validator"
)

// Tags registered by Register.
const (
	TagEmail  = "smart_email"
	TagDate   = "smart_date"
	TagPhone  = "smart_phone"
	TagCustom = "smart_custom"
)

// Register exposes the rules of v as go-playground/validator tags, so
// structs validated with `validate:"..."` can use them:
//
//	type Signup struct {
//	    Email string `validate:"required,smart_email"`
//	    Phone string `validate:"smart_phone=UK"`
//	    Zip   string `validate:"smart_custom=zip"`
//	}
//
// Custom rules are looked up in v's registry at validation time, so rules
// added after Register are honoured.
func Register(pv *playground.Validate, v *validator.Validator) error {
	if pv == nil || v == nil {
		return errors.New("structtag: nil validator")
	}

	fns := map[string]playground.Func{
		TagEmail: func(fl playground.FieldLevel) bool {
			return v.ValidateEmail(fieldValue(fl)).Valid
		},
		TagDate: func(fl playground.FieldLevel) bool {
			return v.ValidateDate(fieldValue(fl)).Valid
		},
		TagPhone: func(fl playground.FieldLevel) bool {
			region, err := validator.ParseRegion(fl.Param())
			if err != nil {
				return false
			}
			return v.ValidatePhoneNumber(fieldValue(fl), region).Valid
		},
		TagCustom: func(fl playground.FieldLevel) bool {
			return v.ValidateCustom(fieldValue(fl), fl.Param()).Valid
		},
	}

	for _, tag := range []string{TagEmail, TagDate, TagPhone, TagCustom} {
		if err := pv.RegisterValidation(tag, fns[tag]); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// fieldValue renders the field as the string the rules see. Times use
// RFC 3339; other non-string kinds such as ints are formatted with fmt.
func fieldValue(fl playground.FieldLevel) string {
	f := fl.Field()
	if f.Kind() == reflect.String {
		return f.String()
	}
	if !f.IsValid() || !f.CanInterface() {
		return ""
	}
	if t, ok := f.Interface().(time.Time); ok {
		if t.IsZero() {
			return ""
		}
		return t.Format(time.RFC3339Nano)
	}
	return fmt.Sprint(f.Interface())
}

// NewPlayground returns a go-playground validator with the rules of v registered.
func NewPlayground(v *validator.Validator) (*playground.Validate, error) {
	pv := playground.New(playground.WithRequiredStructEnabled())
	if err := Register(pv, v); err != nil {
		return nil, err
	}
	return pv, nil
}
