package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// localeEnvVars are probed, in order, when the host locale string does not
// normalize to a supported locale: the all-locales override, the
// messages-only override, then the general language list.
var localeEnvVars = [...]string{"LC_ALL", "LC_MESSAGES", "LANGUAGE"}

var localeMatcher, matcherCodes, matcherBases = buildLocaleMatcher()

// buildLocaleMatcher compiles the supported-locale table into an x/text
// matcher. matcherCodes and matcherBases are index-aligned with the
// matcher's tag list so a match index maps straight back to the canonical
// lang_COUNTRY code and its base language.
func buildLocaleMatcher() (language.Matcher, []string, []language.Base) {
	codes := SupportedLanguages()
	tags := make([]language.Tag, 0, len(codes))
	bases := make([]language.Base, 0, len(codes))
	for _, code := range codes {
		tag := language.Make(strings.ReplaceAll(code, "_", "-"))
		base, _ := tag.Base()
		tags = append(tags, tag)
		bases = append(bases, base)
	}
	return language.NewMatcher(tags), codes, bases
}

// detectSystemLocale produces the best-guess active locale at startup.
// It never fails: any unresolvable or unsupported signal degrades to the
// fallback language, so locale detection can never abort construction.
func detectSystemLocale(getenv func(string) string, fallback string) LocaleInfo {
	code := resolveLocaleCode(getenv)
	if code == "" {
		code = fallback
	}

	info, err := NewLocaleInfo(code)
	if err != nil {
		info, err = NewLocaleInfo(fallback)
		if err != nil {
			// The caller validates the fallback before detection runs.
			return LocaleInfo{}
		}
	}
	return info
}

// resolveLocaleCode reads the host's locale string and normalizes it to a
// supported canonical code, probing the override variables when the primary
// signal does not resolve. Returns "" when nothing resolves.
func resolveLocaleCode(getenv func(string) string) string {
	raw := getenv("LANG")
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	if code := normalizeLocale(raw); code != "" {
		return code
	}

	for _, name := range localeEnvVars {
		if code := normalizeLocale(getenv(name)); code != "" {
			return code
		}
	}

	return ""
}

// normalizeLocale converts a raw locale string such as "es_ES.UTF-8",
// "fr_FR@euro" or "pt-br" into the canonical supported code ("es_ES",
// "fr_FR", "pt_BR"). Returns "" when the string does not parse or does not
// match a supported locale closely enough.
func normalizeLocale(raw string) string {
	// LANGUAGE may hold a colon-separated preference list; take the first.
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		raw = raw[:i]
	}
	// Strip encoding and modifier suffixes ("ru_RU.UTF-8", "fr_FR@euro").
	if i := strings.IndexByte(raw, '.'); i >= 0 {
		raw = raw[:i]
	}
	if i := strings.IndexByte(raw, '@'); i >= 0 {
		raw = raw[:i]
	}

	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "C" || raw == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return ""
	}

	// The matcher reports High confidence even when it crosses language
	// bases (sw-KE matches en-GB), so the match only counts when the base
	// language is preserved.
	if _, idx, conf := localeMatcher.Match(tag); conf >= language.High {
		if base, _ := tag.Base(); base == matcherBases[idx] {
			return matcherCodes[idx]
		}
	}
	return ""
}
