// Package i18n provides a small translation catalogue used to localise
// validation messages.
//
// Translations are loaded through a TranslationAdapter (MapAdapter,
// FileAdapter or FSAdapter for embedded catalogues) and parsed by a Parser
// picked from the file extension (YAML via gopkg.in/yaml.v3, or JSON). A
// catalogue maps language codes to nested keys:
//
//	en:
//	  validation:
//	    phone: "Invalid %{region} phone number."
//
// Keys are addressed with dots ("validation.phone") and placeholders of the
// form %{name} are filled from key/value argument pairs passed to T.
//
// # Usage
//
//	tr, err := i18n.NewTranslator(ctx, i18n.NewFSAdapter(validator.Locales, "locales"))
//	if err != nil {
//	    return err
//	}
//	lang := tr.Match("es-MX,es;q=0.9")             // "es"
//	msg := tr.T(lang, "validation.phone", "region", "USA")
//
// MatchLanguage negotiates languages with golang.org/x/text/language, so
// regional variants fall back to their base language.
package i18n
