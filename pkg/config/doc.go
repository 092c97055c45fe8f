// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` for `.env` files and
// `github.com/caarlos0/env/v11` for parsing the environment into tagged
// structs:
//
//	type Config struct {
//	    Env      string `env:"APP_ENV" envDefault:"development"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// Load reads the default `.env` in the working directory once per process;
// call LoadEnv first to read other files. Values already present in the
// environment always take precedence over file values.
//
// Failures wrap ErrParsingConfig, ErrLoadingEnvFile or ErrNilPointer and can
// be matched with errors.Is. MustLoad and MustLoadEnv panic instead.
package config
