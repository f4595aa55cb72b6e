package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// JSONCodec implements the Codec interface for JSON translation files.
type JSONCodec struct{}

// NewJSONCodec creates a new JSONCodec instance.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Parse parses one JSON object. String-valued members become entries
// directly; object-valued members are recursively flattened into
// dot-notation keys. A structurally invalid document is retried through the
// Properties parser before the format is given up on, so a mislabeled
// key=value file still loads. The _metadata object written by Serialize is
// not filtered out and reappears as ordinary "_metadata.*" keys on reload.
func (c *JSONCodec) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		entries, perr := NewPropertiesCodec().Parse(ctx, content)
		if perr != nil || len(entries) == 0 {
			return nil, errors.Join(ErrFailedToParseJSON, err)
		}
		return entries, nil
	}

	return flattenMap(data, ""), nil
}

// Serialize emits an object with a _metadata block followed by sorted,
// JSON-escaped key/value pairs.
func (c *JSONCodec) Serialize(lang string, entries map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString("{\n")
	b.WriteString("  \"_metadata\": {\n")
	b.WriteString("    \"language\": " + jsonString(lang) + ",\n")
	b.WriteString("    \"generator\": " + jsonString(generatorName) + "\n")
	b.WriteString("  }")

	for _, key := range sortedKeys(entries) {
		b.WriteString(",\n  ")
		b.WriteString(jsonString(key))
		b.WriteString(": ")
		b.WriteString(jsonString(entries[key]))
	}

	b.WriteString("\n}\n")
	return b.String(), nil
}

func jsonString(s string) string {
	// Marshaling a plain string cannot fail.
	b, _ := json.Marshal(s)
	return string(b)
}
