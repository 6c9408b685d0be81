package validator_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartvalidations/pkg/logger"
	"github.com/dmitrymomot/smartvalidations/pkg/validator"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("VALIDATOR_DATE_LAYOUTS", "02.01.2006|2006-01-02")
	t.Setenv("VALIDATOR_CUSTOM_RULES_FILE", "testdata/rules.yaml")
	t.Setenv("VALIDATOR_LOG_LEVEL", "debug")
	t.Setenv("VALIDATOR_LOG_FORMAT", "text")

	cfg, err := validator.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"02.01.2006", "2006-01-02"}, cfg.DateLayouts)
	assert.Equal(t, "testdata/rules.yaml", cfg.CustomRulesFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("loads rules and date layouts", func(t *testing.T) {
		t.Parallel()
		cfg := validator.Config{
			DateLayouts:     []string{"02.01.2006"},
			CustomRulesFile: "testdata/rules.yaml",
			LogLevel:        "info",
			LogFormat:       "json",
		}
		v, err := validator.NewFromConfig(ctx, cfg, validator.WithLogger(logger.Discard()))
		require.NoError(t, err)

		assert.Equal(t, []string{"sku", "zip"}, v.Registry().Names())
		assert.True(t, v.ValidateCustom("12345", "zip").Valid)
		assert.True(t, v.ValidateDate("31.01.2024").Valid)
		assert.False(t, v.ValidateDate("2024-01-31").Valid)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()
		v, err := validator.NewFromConfig(ctx, validator.Config{LogLevel: "warn", LogFormat: "text"})
		require.NoError(t, err)
		assert.Zero(t, v.Registry().Len())
		assert.True(t, v.ValidateDate("2024-01-31").Valid)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewFromConfig(ctx, validator.Config{LogLevel: "loud", LogFormat: "json"})
		assert.Error(t, err)
	})

	t.Run("invalid log format", func(t *testing.T) {
		t.Parallel()
		_, err := validator.NewFromConfig(ctx, validator.Config{LogLevel: "info", LogFormat: "xml"})
		assert.Error(t, err)
	})

	t.Run("missing rules file", func(t *testing.T) {
		t.Parallel()
		cfg := validator.Config{
			CustomRulesFile: filepath.Join(t.TempDir(), "absent.yaml"),
			LogLevel:        "info",
			LogFormat:       "json",
		}
		_, err := validator.NewFromConfig(ctx, cfg)
		assert.ErrorIs(t, err, validator.ErrFailedToLoadRules)
	})

	t.Run("rules file with bad pattern", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "rules.yaml")
		require.NoError(t, os.WriteFile(path, []byte("broken: '(['\n"), 0o600))
		cfg := validator.Config{CustomRulesFile: path, LogLevel: "info", LogFormat: "json"}
		_, err := validator.NewFromConfig(ctx, cfg)
		assert.ErrorIs(t, err, validator.ErrInvalidPattern)
	})
}
