package validator

import "fmt"

// RuleKind identifies which evaluator a Rule dispatches to.
type RuleKind uint8

const (
	KindEmail RuleKind = iota + 1
	KindPhone
	KindCustom
	KindDate
)

func (k RuleKind) String() string {
	switch k {
	case KindEmail:
		return "email"
	case KindPhone:
		return "phone"
	case KindCustom:
		return "custom"
	case KindDate:
		return "date"
	default:
		return fmt.Sprintf("RuleKind(%d)", uint8(k))
	}
}

// Rule is one declared constraint on a field value.
// Rules are immutable; build them with Email, Phone, Custom or Date.
type Rule struct {
	kind   RuleKind
	region Region
	name   string
}

// Email declares that the field holds an email address.
func Email() Rule {
	return Rule{kind: KindEmail}
}

// Phone declares that the field holds a phone number for the given region.
// The region is checked at evaluation time, so an unsupported region yields
// an ErrUnsupportedRegion result rather than a construction error.
func Phone(region Region) Rule {
	return Rule{kind: KindPhone, region: region}
}

// Custom declares that the field must match the registered pattern called name.
func Custom(name string) Rule {
	return Rule{kind: KindCustom, name: name}
}

// Date declares that the field holds a calendar date.
func Date() Rule {
	return Rule{kind: KindDate}
}

func (r Rule) Kind() RuleKind { return r.kind }
func (r Rule) Region() Region { return r.region }
func (r Rule) Name() string   { return r.name }

func (r Rule) String() string {
	switch r.kind {
	case KindPhone:
		return fmt.Sprintf("phone(%s)", r.region)
	case KindCustom:
		return fmt.Sprintf("custom(%s)", r.name)
	default:
		return r.kind.String()
	}
}
