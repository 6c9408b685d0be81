package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartvalidations/pkg/i18n"
)

func newMapTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	adapter := &i18n.MapAdapter{Data: map[string]map[string]any{
		"en": {
			"welcome": "Hello, %{name}!",
			"validation": map[string]any{
				"phone": "Invalid %{region} phone number.",
			},
			"count": 5,
		},
		"es": {
			"welcome": "¡Hola, %{name}!",
		},
	}}
	tr, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"k": "v"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrInvalidTranslationShape)
	})

	t.Run("supported languages are sorted", func(t *testing.T) {
		tr := newMapTranslator(t)
		assert.Equal(t, []string{"en", "es"}, tr.SupportedLanguages())
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()
	tr := newMapTranslator(t)

	t.Run("substitutes named parameters", func(t *testing.T) {
		assert.Equal(t, "Hello, Ana!", tr.T("en", "welcome", "name", "Ana"))
		assert.Equal(t, "¡Hola, Ana!", tr.T("es", "welcome", "name", "Ana"))
	})

	t.Run("resolves nested keys", func(t *testing.T) {
		assert.Equal(t, "Invalid UK phone number.", tr.T("en", "validation.phone", "region", "UK"))
	})

	t.Run("keeps unknown placeholders", func(t *testing.T) {
		assert.Equal(t, "Hello, %{name}!", tr.T("en", "welcome"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", tr.T("en", "missing.key"))
		assert.Equal(t, "welcome", tr.T("fr", "welcome"))
		assert.Equal(t, "count", tr.T("en", "count"))
	})

	t.Run("empty without fallback", func(t *testing.T) {
		strict := newMapTranslator(t, i18n.WithFallbackToKey(false))
		assert.Empty(t, strict.T("en", "missing.key"))
		assert.Empty(t, strict.T("fr", "welcome"))
	})

	t.Run("has translation", func(t *testing.T) {
		assert.True(t, tr.HasTranslation("en", "validation.phone"))
		assert.False(t, tr.HasTranslation("en", "validation.email"))
		assert.False(t, tr.HasTranslation("fr", "welcome"))
	})
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()
	tr := newMapTranslator(t, i18n.WithDefaultLanguage("es"))

	assert.Equal(t, "es", tr.DefaultLanguage())
	assert.Equal(t, "en", tr.Match("en-GB"))
	assert.Equal(t, "es", tr.Match("fr"))
	assert.Equal(t, "es", tr.Match(""))
}
