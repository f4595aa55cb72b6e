// Package i18n provides the internationalisation subsystem of the studio:
// locale detection, multi-format translation loading, a fallback-resolving
// lookup engine, parameterized and pluralized text formatting, and
// round-trip serialization of translation data to disk.
//
// The package allows you to:
//
//   - Detect the host's locale from environment signals and normalize it to
//     a canonical lang_COUNTRY code, degrading to a configured fallback
//     language when detection fails or the result is unsupported.
//   - Load per-language translation files in several formats (JSON,
//     Properties, gettext PO, plain text, YAML), selected by file extension
//     in a fixed priority order.
//   - Translate keys with a three-link fallback chain: target language,
//     fallback language, then the key itself verbatim — a missing
//     translation degrades to readable text, never to an error.
//   - Substitute named "{param}" placeholders and select singular/plural
//     texts by count.
//   - Save translations back to disk preserving the format of the existing
//     file, and diagnose coverage via per-language stats and missing-key
//     detection.
//
// # Architecture
//
// The Translator type is the only public surface the rest of the
// application consumes. Internally it composes a locale resolver (env
// probing plus x/text matching against the supported-locale table) and a
// translation store, which in turn drives one Codec per on-disk format.
// Instances are created once and handed to consumers explicitly; there is
// no package-level singleton.
//
// # Usage
//
//	translator, err := i18n.New(ctx, "./translations", "en_US")
//	if err != nil {
//	    log.Fatalf("failed to init translator: %v", err)
//	}
//
//	msg := translator.T("menu.file")
//	greeting := translator.TWithParams("greet", map[string]string{"name": "Ana"})
//	files := translator.TPlural("file.one", "file.many", n)
//
// Switching languages at runtime:
//
//	if err := translator.SetLocale(ctx, "es_ES"); err != nil {
//	    // unsupported code; the current locale is unchanged
//	}
//
// # Error Handling
//
// Locale validation failures are always returned to the caller
// (*ErrLocaleNotSupported). Per-file parse failures are recovered locally:
// the loader degrades to the next format or to an empty map and the lookup
// chain hides the gap. A missing base folder at construction is fatal
// (ErrDirectoryNotFound).
//
// # Known limitations
//
// Pluralization is a binary singular/plural split, not a CLDR plural
// category system. The JSON serializer writes a _metadata block that the
// parser does not filter out: a saved-then-reloaded JSON file exposes
// "_metadata.language" and "_metadata.generator" as ordinary keys.
package i18n
