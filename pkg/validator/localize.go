package validator

import (
	"embed"
	"fmt"
	"slices"
)

// Locales holds the default validation message catalogue (locales/validation.yaml)
// with English and Spanish translations keyed by TranslationKey.
//
//go:embed locales/*.yaml
var Locales embed.FS

// Translator resolves a translation key for a language, substituting
// %{name} placeholders from key/value argument pairs.
type Translator interface {
	T(lang, key string, args ...string) string
}

// Localize returns r with its message translated into lang. Results without
// a translation are returned unchanged.
func Localize(t Translator, lang string, r Result) Result {
	if r.Valid || r.Error == nil || t == nil {
		return r
	}
	e := localizeError(t, lang, *r.Error)
	r.Error = &e
	return r
}

// LocalizeErrors translates every error of errs into lang.
func LocalizeErrors(t Translator, lang string, errs ValidationErrors) ValidationErrors {
	if t == nil || errs == nil {
		return errs
	}
	out := make(ValidationErrors, 0, len(errs))
	for _, e := range errs {
		out = append(out, localizeError(t, lang, e))
	}
	return out
}

func localizeError(t Translator, lang string, e ValidationError) ValidationError {
	if e.TranslationKey == "" {
		return e
	}

	keys := make([]string, 0, len(e.TranslationValues))
	for k := range e.TranslationValues {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	args := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		args = append(args, k, fmt.Sprint(e.TranslationValues[k]))
	}

	// Translators fall back to the key itself when nothing is found.
	if msg := t.T(lang, e.TranslationKey, args...); msg != "" && msg != e.TranslationKey {
		e.Message = msg
	}
	return e
}
