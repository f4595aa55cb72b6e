package i18n

import (
	"context"
	"errors"
	"strings"
)

// PropertiesCodec implements the Codec interface for the line-oriented
// key=value format used by .properties and .txt files.
type PropertiesCodec struct{}

// NewPropertiesCodec creates a new PropertiesCodec instance.
func NewPropertiesCodec() *PropertiesCodec {
	return &PropertiesCodec{}
}

// Parse reads key=value lines. Blank lines and lines starting with "#" or
// ";" are ignored; lines without "=" are skipped, not fatal. One layer of
// matching surrounding quotes is stripped from the value and escape
// sequences are resolved.
func (c *PropertiesCodec) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	entries := make(map[string]string)
	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}

		eq := strings.IndexByte(line, '=')
		if eq < 0 {
			// Malformed line, skipped by contract.
			continue
		}

		key := strings.TrimSpace(line[:eq])
		if key == "" {
			continue
		}

		value := strings.TrimSpace(line[eq+1:])
		entries[key] = unescapeValue(stripQuotes(value))
	}

	return entries, nil
}

// Serialize emits a header comment followed by sorted, escaped key=value
// lines.
func (c *PropertiesCodec) Serialize(lang string, entries map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString("# " + lang + " translations\n")
	b.WriteString("# Generated by " + generatorName + "\n\n")

	for _, key := range sortedKeys(entries) {
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(escapeValue(entries[key]))
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// stripQuotes removes one layer of matching surrounding double or single
// quotes, if present.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	if first, last := s[0], s[len(s)-1]; first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
