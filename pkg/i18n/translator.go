package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"
	"sync"
)

// Translator is the public surface of the i18n subsystem: locale switching,
// fallback-resolving lookup, parameter substitution, pluralization and
// diagnostics. It composes the locale resolver and the translation store.
//
// One mutex guards the whole instance, so a single Translator can be shared
// across goroutines even though every operation is synchronous.
type Translator struct {
	mu sync.RWMutex

	store *store

	systemLocale  LocaleInfo
	currentLocale LocaleInfo

	// defaultLanguage records the locale chosen at construction time;
	// fallbackLanguage is fixed at construction and terminates every
	// lookup chain. The fallback language is always loaded.
	defaultLanguage  string
	fallbackLanguage string

	logger     *slog.Logger
	logMissing bool
	getenv     func(string) string
}

// New creates a Translator rooted at dir, with fallbackLanguage as the
// terminal link of every lookup chain.
//
// The fallback language must be a supported locale code and dir must be an
// existing directory; either failing is fatal to construction. Locale
// detection itself never fails: an unresolvable system locale degrades to
// the fallback language. The fallback language is always loaded, plus the
// detected locale when it differs.
func New(ctx context.Context, dir, fallbackLanguage string, opts ...Option) (*Translator, error) {
	fallbackInfo, err := NewLocaleInfo(fallbackLanguage)
	if err != nil {
		return nil, err
	}

	t := &Translator{
		store:            newStore(dir),
		fallbackLanguage: fallbackLanguage,
		logger:           slog.New(slog.NewTextHandler(io.Discard, nil)), // nope-logger by default
		getenv:           os.Getenv,
	}

	for _, opt := range opts {
		opt(t)
	}

	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errors.Join(ErrDirectoryNotFound, fmt.Errorf("path %q", dir))
	}

	t.systemLocale = detectSystemLocale(t.getenv, fallbackLanguage)
	if t.systemLocale.IsValid() {
		t.currentLocale = t.systemLocale
	} else {
		t.currentLocale = fallbackInfo
	}
	t.defaultLanguage = t.currentLocale.Locale

	if _, err := t.store.loadLanguage(ctx, fallbackLanguage); err != nil {
		return nil, errors.Join(ErrInitializationFailed, err)
	}
	if t.currentLocale.Locale != fallbackLanguage {
		if _, err := t.store.loadLanguage(ctx, t.currentLocale.Locale); err != nil {
			return nil, errors.Join(ErrInitializationFailed, err)
		}
	}

	t.logger.InfoContext(ctx, "translator ready",
		"dir", dir,
		"locale", t.currentLocale.Locale,
		"fallback", fallbackLanguage)

	return t, nil
}

// T translates key for the current locale, or for the optional language
// override. Lookup order: exact (lang, key); then (fallback, key) when lang
// is not the fallback language; then key itself verbatim. A missing
// translation degrades to readable text, never to an error or blank string.
func (t *Translator) T(key string, lang ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	code := t.resolveLang(lang)
	if entries, ok := t.store.translations[code]; ok {
		if value, ok := entries[key]; ok {
			return value
		}
	}

	if code != t.fallbackLanguage {
		if value, ok := t.store.translations[t.fallbackLanguage][key]; ok {
			return value
		}
	}

	if t.logMissing {
		t.logger.Warn("translation missing", "lang", code, "key", key)
	}
	return key
}

// TWithParams translates key, then replaces every literal "{name}"
// occurrence with the corresponding value from params. Parameters are
// applied in sorted key order, so the output is deterministic even when one
// value contains another parameter's placeholder. Placeholders absent from
// params stay untouched.
func (t *Translator) TWithParams(key string, params map[string]string, lang ...string) string {
	text := t.T(key, lang...)
	for _, name := range slices.Sorted(maps.Keys(params)) {
		text = strings.ReplaceAll(text, "{"+name+"}", params[name])
	}
	return text
}

// TPlural selects singularKey when n == 1 and pluralKey otherwise, then
// translates the selected key. The binary split is a known limitation:
// languages with zero/few/many categories are not modeled.
func (t *Translator) TPlural(singularKey, pluralKey string, n int, lang ...string) string {
	if n == 1 {
		return t.T(singularKey, lang...)
	}
	return t.T(pluralKey, lang...)
}

// SetLocale validates code, switches the current locale to it and lazily
// loads its translations. An unsupported code errors without mutating the
// current locale.
func (t *Translator) SetLocale(ctx context.Context, code string) error {
	info, err := NewLocaleInfo(code)
	if err != nil {
		return err
	}
	return t.setLocale(ctx, info)
}

// SetLocaleInfo is the LocaleInfo-typed variant of SetLocale.
func (t *Translator) SetLocaleInfo(ctx context.Context, info LocaleInfo) error {
	if !info.IsValid() {
		return &ErrLocaleNotSupported{Locale: info.Locale}
	}
	return t.setLocale(ctx, info)
}

func (t *Translator) setLocale(ctx context.Context, info LocaleInfo) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.store.has(info.Locale) {
		if _, err := t.store.loadLanguage(ctx, info.Locale); err != nil {
			return err
		}
	}
	t.currentLocale = info
	return nil
}

// CurrentLocale returns the active locale.
func (t *Translator) CurrentLocale() LocaleInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.currentLocale
}

// SystemLocale returns the locale detected from the host environment at
// construction time.
func (t *Translator) SystemLocale() LocaleInfo {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.systemLocale
}

// DefaultLanguage returns the locale code chosen at construction.
func (t *Translator) DefaultLanguage() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.defaultLanguage
}

// FallbackLanguage returns the terminal language of every lookup chain.
func (t *Translator) FallbackLanguage() string {
	return t.fallbackLanguage
}

// AddLanguage loads the given language, creating an empty entry when no
// translation file exists. Loading an already-loaded language is a no-op.
func (t *Translator) AddLanguage(ctx context.Context, code string) error {
	if _, err := NewLocaleInfo(code); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.store.has(code) {
		return nil
	}
	_, err := t.store.loadLanguage(ctx, code)
	return err
}

// AddTranslation sets key to value for lang (the current locale when lang
// is empty), lazily loading the language first. When fallbackValue is
// non-empty and lang is not the fallback language, the fallback language
// map receives fallbackValue under the same key, seeding the safety net in
// the same call.
func (t *Translator) AddTranslation(ctx context.Context, key, value, lang, fallbackValue string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	code := lang
	if code == "" {
		code = t.currentLocale.Locale
	}
	if _, err := NewLocaleInfo(code); err != nil {
		return err
	}

	if !t.store.has(code) {
		if _, err := t.store.loadLanguage(ctx, code); err != nil {
			return err
		}
	}
	t.store.translations[code][key] = value

	if fallbackValue != "" && code != t.fallbackLanguage {
		if !t.store.has(t.fallbackLanguage) {
			if _, err := t.store.loadLanguage(ctx, t.fallbackLanguage); err != nil {
				return err
			}
		}
		t.store.translations[t.fallbackLanguage][key] = fallbackValue
	}

	return nil
}

// HasLanguage reports whether the language has been loaded (even if its
// map is empty).
func (t *Translator) HasLanguage(code string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.has(code)
}

// AvailableLanguages returns the sorted list of loaded language codes.
func (t *Translator) AvailableLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Sorted(maps.Keys(t.store.translations))
}

// SupportedLanguages returns the sorted list of locale codes the subsystem
// accepts, regardless of what is loaded.
func (t *Translator) SupportedLanguages() []string {
	return SupportedLanguages()
}

// ReloadTranslations re-reads every loaded language from disk. A language
// whose file has disappeared reverts to an empty map but stays loaded.
// Returns the number of languages whose file successfully re-parsed.
func (t *Translator) ReloadTranslations(ctx context.Context) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.store.reload(ctx)
}

// SaveTranslations writes the language's map back to disk, preserving the
// format of an existing file; a new file uses formatHint (default ".json").
func (t *Translator) SaveTranslations(ctx context.Context, code, formatHint string) error {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.store.save(ctx, code, formatHint)
}

// TranslationStats returns the entry count per loaded language. Purely
// derived, no side effects.
func (t *Translator) TranslationStats() map[string]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	stats := make(map[string]int, len(t.store.translations))
	for lang, entries := range t.store.translations {
		stats[lang] = len(entries)
	}
	return stats
}

// FindMissingTranslations returns, sorted, every key present in the
// fallback language but absent from lang. Returns nil when either language
// is unloaded.
func (t *Translator) FindMissingTranslations(lang string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	target, ok := t.store.translations[lang]
	if !ok {
		return nil
	}
	fallback, ok := t.store.translations[t.fallbackLanguage]
	if !ok {
		return nil
	}

	var missing []string
	for key := range fallback {
		if _, ok := target[key]; !ok {
			missing = append(missing, key)
		}
	}
	slices.Sort(missing)
	return missing
}

func (t *Translator) resolveLang(lang []string) string {
	if len(lang) > 0 && lang[0] != "" {
		return lang[0]
	}
	return t.currentLocale.Locale
}
