// Package structtag connects struct tags to the validator rule library.
//
// SchemaOf reads `smart:"..."` tags once and produces a validator.Schema, so
// records are then validated without further tag parsing:
//
//	type Contact struct {
//	    Email string `json:"email" smart:"email"`
//	    Phone string `json:"phone" smart:"phone=USA"`
//	}
//
//	var contactSchema = structtag.MustSchemaOf[Contact]()
//	res := validator.ValidateEntity(v, contact, contactSchema)
//
// Register adds the same rules to a github.com/go-playground/validator/v10
// instance as smart_email, smart_date, smart_phone=<region> and
// smart_custom=<name> tags for code that already validates with `validate`
// tags.
package structtag
