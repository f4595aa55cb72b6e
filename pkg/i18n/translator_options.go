package i18n

import (
	"io"
	"log/slog"
)

// Option is a function that configures a Translator instance.
type Option func(*Translator)

// WithLogger provides a customizable logger for the translator.
// If not specified, a discard logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithMissingTranslationsLogging controls whether missing translations are
// logged at Warn level. Default is false to avoid excessive logging from
// per-frame UI lookups.
func WithMissingTranslationsLogging(log bool) Option {
	return func(t *Translator) {
		t.logMissing = log
	}
}

// WithNoLogging is a convenience option that disables all logging.
func WithNoLogging() Option {
	return func(t *Translator) {
		t.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		t.logMissing = false
	}
}

// WithEnvironment replaces the environment lookup used for system locale
// detection. Intended for tests and embedders that manage their own locale
// signals.
func WithEnvironment(getenv func(string) string) Option {
	return func(t *Translator) {
		if getenv != nil {
			t.getenv = getenv
		}
	}
}
