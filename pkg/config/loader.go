package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load populates the provided configuration struct from environment
// variables, using the struct's `env` field tags.
//
// The default .env file in the working directory is loaded once per process
// before the first parse; a missing .env file is not an error.
//
// Example:
//
//	type I18nConfig struct {
//		Dir      string `env:"I18N_DIR" envDefault:"./translations"`
//		Fallback string `env:"I18N_FALLBACK_LANGUAGE" envDefault:"en_US"`
//	}
//
//	var cfg I18nConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	defaultEnvLoaded.Do(func() {
		// The .env file is optional; real environment variables win anyway.
		_ = godotenv.Load()
	})

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// Intended for configuration the application cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
