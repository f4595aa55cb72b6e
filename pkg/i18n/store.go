package i18n

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// store owns the in-memory language → key → value mapping and the
// load/save orchestration over the format codecs. A language present as a
// top-level key is "loaded" (possibly with an empty map); absence means the
// language was never attempted. The store carries no locking: the Translator
// serializes all access.
type store struct {
	dir          string
	translations map[string]map[string]string
}

func newStore(dir string) *store {
	return &store{
		dir:          dir,
		translations: make(map[string]map[string]string),
	}
}

func (s *store) has(lang string) bool {
	_, ok := s.translations[lang]
	return ok
}

// loadLanguage tries each extension in priority order and keeps the first
// file that parses. A parse failure degrades to the next format; when no
// file loads, the language is registered with an empty map so lookups
// resolve via the fallback chain instead of re-reading the disk. The
// boolean reports whether a file was actually parsed.
func (s *store) loadLanguage(ctx context.Context, lang string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Join(ErrLoadingCancelled, err)
	}

	for _, ext := range loadExtensions {
		path := filepath.Join(s.dir, lang+ext)
		content, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		entries, err := CodecForExtension(ext).Parse(ctx, string(content))
		if err != nil {
			if errors.Is(err, ErrParsingCancelled) {
				return false, err
			}
			continue
		}

		s.translations[lang] = entries
		return true, nil
	}

	s.translations[lang] = make(map[string]string)
	return false, nil
}

// reload erases and re-reads every loaded language. A language whose file
// has disappeared reverts to an empty map but stays loaded. Returns the
// number of languages whose file successfully re-parsed.
func (s *store) reload(ctx context.Context) (int, error) {
	count := 0
	for lang := range s.translations {
		ok, err := s.loadLanguage(ctx, lang)
		if err != nil {
			return count, err
		}
		if ok {
			count++
		}
	}
	return count, nil
}

// save writes the language's map back to disk. An existing file of any
// supported extension keeps its format; otherwise a new file is created
// from formatHint (default ".json"), with the Properties serializer as the
// universal fallback writer for unrecognized hints.
func (s *store) save(ctx context.Context, lang, formatHint string) error {
	if err := ctx.Err(); err != nil {
		return errors.Join(ErrSavingCancelled, err)
	}

	entries, ok := s.translations[lang]
	if !ok {
		return errors.Join(ErrLanguageNotLoaded, errors.New(lang))
	}

	for _, ext := range loadExtensions {
		path := filepath.Join(s.dir, lang+ext)
		if _, err := os.Stat(path); err == nil {
			return s.write(lang, path, CodecForExtension(ext), entries)
		}
	}

	ext := strings.ToLower(formatHint)
	if ext == "" {
		ext = ".json"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	codec := CodecForExtension(ext)
	if codec == nil {
		codec = NewPropertiesCodec()
		ext = ".properties"
	}

	return s.write(lang, filepath.Join(s.dir, lang+ext), codec, entries)
}

func (s *store) write(lang, path string, codec Codec, entries map[string]string) error {
	content, err := codec.Serialize(lang, entries)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Join(ErrFailedToWriteFile, err)
	}
	return nil
}
