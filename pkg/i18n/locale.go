package i18n

import (
	"maps"
	"slices"
	"strings"
)

// supportedLocales maps canonical locale codes to their English display
// names. The set is closed: every locale the studio ships translations for
// is listed here, and everything else fails validation.
var supportedLocales = map[string]string{
	"de_DE": "German (Germany)",
	"en_GB": "English (United Kingdom)",
	"en_US": "English (United States)",
	"es_ES": "Spanish (Spain)",
	"es_MX": "Spanish (Mexico)",
	"fr_FR": "French (France)",
	"it_IT": "Italian (Italy)",
	"ja_JP": "Japanese (Japan)",
	"ko_KR": "Korean (South Korea)",
	"pt_BR": "Portuguese (Brazil)",
	"ru_RU": "Russian (Russia)",
	"zh_CN": "Chinese (Simplified)",
}

// SupportedLanguages returns the sorted list of locale codes the subsystem
// accepts, independent of what is currently loaded from disk.
func SupportedLanguages() []string {
	return slices.Sorted(maps.Keys(supportedLocales))
}

// LocaleInfo is a validated pair of locale code and human-readable language
// name. It is a value type: instances are replaced wholesale, never mutated.
type LocaleInfo struct {
	Locale   string // canonical code, e.g. "es_ES"
	Language string // display name, e.g. "Spanish (Spain)"
}

// NewLocaleInfo looks up the display name for code in the supported-locale
// table. Unsupported codes return *ErrLocaleNotSupported.
func NewLocaleInfo(code string) (LocaleInfo, error) {
	name, ok := supportedLocales[code]
	if !ok {
		return LocaleInfo{}, &ErrLocaleNotSupported{Locale: code}
	}
	return LocaleInfo{Locale: code, Language: name}, nil
}

// IsValid reports whether both fields are populated and the code belongs to
// the supported set. It is a pure predicate: callers can use it without
// re-querying the table.
func (l LocaleInfo) IsValid() bool {
	if l.Locale == "" || l.Language == "" {
		return false
	}
	_, ok := supportedLocales[l.Locale]
	return ok
}

// LanguageCode returns the part of the locale code before the first "_",
// or the whole code when there is no separator.
func (l LocaleInfo) LanguageCode() string {
	if i := strings.IndexByte(l.Locale, '_'); i >= 0 {
		return l.Locale[:i]
	}
	return l.Locale
}

// CountryCode returns the part of the locale code after the first "_",
// or the empty string when there is no separator.
func (l LocaleInfo) CountryCode() string {
	if i := strings.IndexByte(l.Locale, '_'); i >= 0 {
		return l.Locale[i+1:]
	}
	return ""
}
