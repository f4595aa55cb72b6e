package i18n

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// generatorName is written into serialized file headers and the JSON
// _metadata block.
const generatorName = "adventure-designer-studio"

// Codec converts between a flat key→value translation map and one on-disk
// textual format. Parse and Serialize are inverse operations modulo
// whitespace and quote normalization.
type Codec interface {
	// Parse processes the given file content and returns a flat map of
	// translation keys to values.
	Parse(ctx context.Context, content string) (map[string]string, error)

	// Serialize renders the flat map as file content for the given language.
	Serialize(lang string, entries map[string]string) (string, error)
}

// loadExtensions is the fixed priority order in which translation files are
// tried when loading a language. ".txt" shares the Properties grammar;
// ".yaml"/".yml" come last so the original four-format order is unchanged.
var loadExtensions = []string{".json", ".properties", ".po", ".txt", ".yaml", ".yml"}

// CodecForExtension selects a codec from the closed format set by file
// extension (with or without the leading dot). Unknown extensions return nil.
func CodecForExtension(ext string) Codec {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "json":
		return NewJSONCodec()
	case "properties", "txt":
		return NewPropertiesCodec()
	case "po":
		return NewPOCodec()
	case "yaml", "yml":
		return NewYAMLCodec()
	default:
		return nil
	}
}

func sortedKeys(m map[string]string) []string {
	return slices.Sorted(maps.Keys(m))
}

// unescapeValue resolves the escape sequences \n \t \r \\ \" \' in a parsed
// value. Unrecognized sequences are kept verbatim, backslash included.
func unescapeValue(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\':
			b.WriteByte('\\')
		case '"':
			b.WriteByte('"')
		case '\'':
			b.WriteByte('\'')
		default:
			b.WriteByte(s[i])
			continue
		}
		i++
	}
	return b.String()
}

// escapeValue is the inverse of unescapeValue for the characters that cannot
// survive a line-oriented format.
func escapeValue(s string) string {
	r := strings.NewReplacer(
		"\\", `\\`,
		"\n", `\n`,
		"\t", `\t`,
		"\r", `\r`,
	)
	return r.Replace(s)
}

// flattenMap converts a nested map into dot-notation keys:
// {"menu": {"file": "File"}} becomes "menu.file" → "File".
// Non-string leaves are stringified.
func flattenMap(data map[string]any, prefix string) map[string]string {
	result := make(map[string]string, len(data))
	flattenInto(result, data, prefix)
	return result
}

func flattenInto(result map[string]string, data map[string]any, prefix string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = v
		case map[string]any:
			flattenInto(result, v, fullKey)
		default:
			result[fullKey] = fmt.Sprintf("%v", v)
		}
	}
}
