package validator

import (
	"context"

	"github.com/dmitrymomot/smartvalidations/pkg/config"
	"github.com/dmitrymomot/smartvalidations/pkg/logger"
)

// Config holds environment driven validator settings.
type Config struct {
	// DateLayouts overrides DefaultDateLayouts; layouts are separated by "|".
	DateLayouts []string `env:"VALIDATOR_DATE_LAYOUTS" envSeparator:"|"`
	// CustomRulesFile is a YAML document of custom rules loaded at startup.
	CustomRulesFile string `env:"VALIDATOR_CUSTOM_RULES_FILE"`
	LogLevel        string `env:"VALIDATOR_LOG_LEVEL" envDefault:"info"`
	LogFormat       string `env:"VALIDATOR_LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from the environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a Validator from cfg. Options passed by the caller
// are applied after the configured ones and take precedence.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Validator, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithAttr(logger.Component("validator")),
	)

	base := []Option{WithLogger(log), WithDateLayouts(cfg.DateLayouts...)}
	v := New(append(base, opts...)...)

	if cfg.CustomRulesFile != "" {
		if err := v.registry.LoadFile(ctx, cfg.CustomRulesFile); err != nil {
			return nil, err
		}
	}
	return v, nil
}
