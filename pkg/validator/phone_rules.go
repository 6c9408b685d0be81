package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var phoneRegexes = map[Region]*regexp.Regexp{
	// Optional parenthesised area code, optional hyphen, 3-3-4 digits.
	USA: regexp.MustCompile(`^\(?\d{3}\)?-?\d{3}-\d{4}$`),
	// Mobile numbers with either the +44 country code or the 07 trunk prefix.
	UK: regexp.MustCompile(`^(\+44\s?7\d{3}|\(?07\d{3}\)?)\s?\d{3}\s?\d{3}$`),
	// Optional country prefix, then 9 digits starting with 6-9; spaces or hyphens may separate groups.
	Spain: regexp.MustCompile(`^(\+34|0034|34)?[\s-]?[6-9][\s-]?([0-9][\s-]?){8}$`),
	Ireland: regexp.MustCompile(`^08\d{8}$`),
}

// ValidatePhoneNumber validates value against the phone format of region.
func ValidatePhoneNumber(value string, region Region) Result {
	re, ok := phoneRegexes[region]
	if !ok {
		return invalid(ErrUnsupportedRegion, "validation.unsupported_region",
			fmt.Sprintf("Unsupported region: %s", region),
			map[string]any{"region": string(region)},
		)
	}
	if !re.MatchString(value) {
		return invalid(ErrInvalidFormat, "validation.phone",
			fmt.Sprintf("Invalid %s phone number.", region),
			map[string]any{"region": string(region)},
		)
	}
	return valid()
}

// FormatE164 validates value for region and returns it in E.164 form,
// for example "+12015550123".
func FormatE164(value string, region Region) (string, error) {
	if res := ValidatePhoneNumber(value, region); !res.Valid {
		return "", res.Err()
	}

	number, err := phonenumbers.Parse(strings.TrimSpace(value), region.ISOCode())
	if err != nil {
		return "", errors.Join(ErrInvalidPhoneNumber, err)
	}
	if !phonenumbers.IsValidNumberForRegion(number, region.ISOCode()) {
		return "", fmt.Errorf("%w: not a valid %s number", ErrInvalidPhoneNumber, region)
	}

	return phonenumbers.Format(number, phonenumbers.E164), nil
}
