package i18n

import (
	"context"

	"github.com/chernandezosma/Adventure-Designer-Studio-sub000/pkg/config"
)

// Config holds the translator's environment-driven settings.
type Config struct {
	Dir              string `env:"I18N_DIR" envDefault:"./translations"`           // Dir is the folder holding <languageCode>.<ext> files.
	FallbackLanguage string `env:"I18N_FALLBACK_LANGUAGE" envDefault:"en_US"`      // FallbackLanguage terminates every lookup chain and is always loaded.
	LogMissing       bool   `env:"I18N_LOG_MISSING" envDefault:"false"`            // LogMissing enables Warn logs for untranslated keys.
}

// NewFromConfig creates a Translator from an explicit Config.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Translator, error) {
	if cfg.LogMissing {
		opts = append(opts, WithMissingTranslationsLogging(true))
	}
	return New(ctx, cfg.Dir, cfg.FallbackLanguage, opts...)
}

// NewFromEnv loads Config from the environment (honoring a .env file via
// the config package) and creates a Translator from it.
func NewFromEnv(ctx context.Context, opts ...Option) (*Translator, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg, opts...)
}
