package validator

// ValidateEntity checks record against schema and returns the first failure
// in declaration order. Later fields and rules are not evaluated once a rule
// fails. A record whose every rule passes yields a valid result.
// A nil v behaves like New(): default date layouts and an empty registry.
func ValidateEntity[T any](v *Validator, record T, schema *Schema[T]) Result {
	if schema == nil {
		return valid()
	}
	if v == nil {
		v = New()
	}
	for _, b := range schema.bindings {
		if len(b.rules) == 0 {
			continue
		}
		value := b.get(record)
		for _, rule := range b.rules {
			if res := v.Evaluate(rule, value); !res.Valid {
				return res.withField(b.field)
			}
		}
	}
	return valid()
}

// ValidateEntityAll checks every rule of schema against record and returns
// all failures as ValidationErrors, or nil when the record is valid.
// A nil v is handled as in ValidateEntity.
func ValidateEntityAll[T any](v *Validator, record T, schema *Schema[T]) error {
	if schema == nil {
		return nil
	}
	if v == nil {
		v = New()
	}
	var errs ValidationErrors
	for _, b := range schema.bindings {
		if len(b.rules) == 0 {
			continue
		}
		value := b.get(record)
		for _, rule := range b.rules {
			if res := v.Evaluate(rule, value); !res.Valid {
				errs.Add(*res.withField(b.field).Error)
			}
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// Validate is shorthand for ValidateEntity(v, record, s).
func (s *Schema[T]) Validate(v *Validator, record T) Result {
	return ValidateEntity(v, record, s)
}
