package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is the language used when nothing better matches.
const DefaultLanguage = "en"

// MatchLanguage picks the best supported language for preferred, which may be
// a single tag ("es-MX") or an Accept-Language style list ("fr;q=0.9, es").
// It returns defaultLang when nothing matches or supported is empty.
func MatchLanguage(preferred string, supported []string, defaultLang string) string {
	if preferred == "" || len(supported) == 0 {
		return defaultLang
	}

	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, s)
	}
	if len(tags) == 0 {
		return defaultLang
	}

	wanted, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(wanted) == 0 {
		return defaultLang
	}

	_, idx, confidence := language.NewMatcher(tags).Match(wanted...)
	if confidence == language.No {
		return defaultLang
	}
	return names[idx]
}
