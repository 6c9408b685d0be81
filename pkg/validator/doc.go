// Package validator provides declarative, pattern based validation of record
// fields: email addresses, region specific phone numbers, calendar dates and
// caller registered custom patterns.
//
// Callers describe what to check once per record type with a Schema and run
// it against any number of records. Each evaluation produces a Result whose
// Error carries a human readable message, a translation key and the outcome
// sentinel (ErrInvalidFormat, ErrUnsupportedRegion or ErrCustomRuleNotFound),
// so callers can branch with errors.Is on Result.Err().
//
// # Architecture
//
// Each source file groups one concern:
//   - email_rules.go, phone_rules.go, date_rules.go, custom_rules.go – rule evaluators
//   - registry.go – the custom rule Registry (name → compiled pattern)
//   - rule.go, region.go – the Rule variant and the closed Region set
//   - schema.go, entity.go – field bindings and the dispatcher
//   - localize.go – message translation driven by TranslationKey
//
// Core building blocks:
//   - Rule              – Email, Phone(region), Custom(name) or Date
//   - Result            – outcome of one rule or of a whole record
//   - Registry          – explicitly owned, goroutine-safe custom patterns
//   - Validator         – bundles a Registry, date layouts and a logger
//   - ValidationErrors  – slice type that implements the error interface
//
// # Usage
//
//	v := validator.New()
//	if err := v.AddCustomValidation("zip", `^[0-9]{5}$`); err != nil {
//	    return err // duplicate name or bad pattern
//	}
//
//	schema := validator.NewSchema[Customer]().
//	    Field("email", func(c Customer) string { return c.Email }, validator.Email()).
//	    Field("phone", func(c Customer) string { return c.Phone }, validator.Phone(validator.USA)).
//	    Field("zip", func(c Customer) string { return c.Zip }, validator.Custom("zip"))
//
//	if res := validator.ValidateEntity(v, customer, schema); !res.Valid {
//	    log.Println(res.Error.Field, res.Message())
//	}
//
// # Error Handling
//
// Invalid data is never reported as a Go error by the evaluators: it is a
// Result. Hard errors are reserved for setup problems, such as registering a
// custom rule twice (*DuplicateRuleError, matching ErrDuplicateRule).
//
// ValidateEntity stops at the first failure. ValidateEntityAll evaluates the
// whole schema and returns every failure as ValidationErrors.
package validator
