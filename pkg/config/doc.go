// Package config provides a small, type-safe way to load application
// configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// the default `.env` file is loaded once per process (if present), then the
// environment is parsed into any Go struct based on its `env` field tags.
//
// # Usage
//
// Describe the configuration as a struct with `env` tags:
//
//	type I18nConfig struct {
//	    Dir      string `env:"I18N_DIR" envDefault:"./translations"`
//	    Fallback string `env:"I18N_FALLBACK_LANGUAGE" envDefault:"en_US"`
//	}
//
// then populate it:
//
//	var cfg I18nConfig
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("loading config: %v", err)
//	}
//
// MustLoad panics instead of returning an error, for configuration the
// process cannot start without.
package config
