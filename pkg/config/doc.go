// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or more `.env` files into the process environment.
//   - Load parses the environment into any struct using `env` field tags,
//     loading the default `.env` file once if present.
//   - MustLoad and MustLoadEnv panic on failure for settings the program
//     cannot start without.
//
// # Usage
//
//	type Config struct {
//	    RulesFile   string   `env:"VALIDATOR_CUSTOM_RULES_FILE"`
//	    DateLayouts []string `env:"VALIDATOR_DATE_LAYOUTS" envSeparator:"|"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
//
// # Error Handling
//
// Errors are joined with the package sentinels ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer so callers can match them with errors.Is.
package config
