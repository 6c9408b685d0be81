package validator

import (
	"strings"
	"time"
)

// DefaultDateLayouts are the calendar-date layouts accepted by ValidateDate.
// Ambiguous day/month orders follow the US convention (01/02/2006 is January 2nd).
var DefaultDateLayouts = []string{
	time.DateOnly,
	"2006-1-2",
	time.DateTime,
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01/02/2006 15:04:05",
	"1/2/2006 3:04:05 PM",
	"1/2/2006 3:04 PM",
	"01-02-2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"January 2, 2006",
	"January 2 2006",
	"Monday, January 2, 2006",
	"Mon, January 2, 2006",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC822,
	time.RFC850,
}

// ValidateDate validates that value is a calendar date in one of DefaultDateLayouts.
func ValidateDate(value string) Result {
	return validateDate(value, DefaultDateLayouts)
}

func validateDate(value string, layouts []string) Result {
	if _, ok := parseDate(value, layouts); !ok {
		return invalid(ErrInvalidFormat, "validation.date", "Invalid date.", nil)
	}
	return valid()
}

func parseDate(value string, layouts []string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
