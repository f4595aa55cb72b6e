package i18n

import (
	"context"
	"errors"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLCodec implements the Codec interface for YAML translation files.
// YAML is a convenience format for hand-maintained files and sits last in
// the load priority order.
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAMLCodec instance.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Parse parses a YAML mapping; nested mappings are flattened into
// dot-notation keys the same way the JSON codec flattens objects.
func (c *YAMLCodec) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	return flattenMap(data, ""), nil
}

// Serialize emits a header comment followed by the flat map as a YAML
// mapping. yaml.v3 marshals map keys in sorted order.
func (c *YAMLCodec) Serialize(lang string, entries map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString("# " + lang + " translations\n")
	b.WriteString("# Generated by " + generatorName + "\n")

	out, err := yaml.Marshal(entries)
	if err != nil {
		return "", errors.Join(ErrFailedToParseYAML, err)
	}
	b.Write(out)

	return b.String(), nil
}
