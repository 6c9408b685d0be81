package validator

import (
	"fmt"
	"strings"
)

// Region is a phone-number jurisdiction. The set is closed: values other
// than the constants below are reported as unsupported.
type Region string

const (
	USA     Region = "USA"
	UK      Region = "UK"
	Spain   Region = "Spain"
	Ireland Region = "Ireland"
)

var regionISOCodes = map[Region]string{
	USA:     "US",
	UK:      "GB",
	Spain:   "ES",
	Ireland: "IE",
}

// Regions returns the supported regions in a stable order.
func Regions() []Region {
	return []Region{USA, UK, Spain, Ireland}
}

// Supported reports whether r is one of the known regions.
func (r Region) Supported() bool {
	_, ok := regionISOCodes[r]
	return ok
}

// ISOCode returns the ISO 3166-1 alpha-2 code of the region, or "" if unsupported.
func (r Region) ISOCode() string {
	return regionISOCodes[r]
}

func (r Region) String() string {
	return string(r)
}

// ParseRegion resolves a region by name or ISO code, ignoring case.
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	for _, r := range Regions() {
		if strings.EqualFold(s, string(r)) || strings.EqualFold(s, r.ISOCode()) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedRegion, s)
}
