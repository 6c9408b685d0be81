package validator

import (
	"regexp"
	"strings"
)

const (
	maxEmailLocalLength  = 64
	maxEmailDomainLength = 255
)

// Local part is a dot-atom or a quoted string; the domain ends with an
// alphabetic label of 2-19 letters or a punycode label.
var emailRegex = regexp.MustCompile(`(?i)^(?:[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*|"(?:[^"\\\r\n]|\\.)+")@(?:[a-z0-9](?:[a-z0-9-]*[a-z0-9])?\.)+(?:[a-z]{2,19}|xn--[a-z0-9-]{1,59})$`)

// ValidateEmail validates value as an email address.
func ValidateEmail(value string) Result {
	if !isEmail(value) {
		return invalid(ErrInvalidFormat, "validation.email", "Invalid email.", nil)
	}
	return valid()
}

func isEmail(value string) bool {
	at := strings.LastIndexByte(value, '@')
	if at < 1 {
		return false
	}
	local, domain := value[:at], value[at+1:]
	if len(local) > maxEmailLocalLength || domain == "" || len(domain) > maxEmailDomainLength {
		return false
	}
	return emailRegex.MatchString(value)
}
