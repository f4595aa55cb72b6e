package i18n

import (
	"context"
	"errors"
	"strings"
)

// POCodec implements the Codec interface for a minimal gettext subset:
// msgid/msgstr pairs with bare quoted continuation lines, entries separated
// by blank lines or comments.
type POCodec struct{}

// NewPOCodec creates a new POCodec instance.
func NewPOCodec() *POCodec {
	return &POCodec{}
}

type poField int

const (
	poFieldNone poField = iota
	poFieldID
	poFieldStr
)

// Parse scans msgid/msgstr entries. A blank line or "#" comment closes the
// current entry, which is committed only when both parts are non-empty; the
// header pseudo-entry (empty msgid) therefore never reaches the map. The
// final pending entry is committed after the scan ends.
func (c *POCodec) Parse(ctx context.Context, content string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrParsingCancelled, err)
	}

	entries := make(map[string]string)

	var msgid, msgstr string
	field := poFieldNone

	commit := func() {
		if msgid != "" && msgstr != "" {
			entries[msgid] = msgstr
		}
		msgid, msgstr = "", ""
		field = poFieldNone
	}

	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))

		switch {
		case line == "" || line[0] == '#':
			commit()
		case strings.HasPrefix(line, "msgid"):
			// A msgid directly after a msgstr starts a new entry even
			// without a separating blank line.
			if field == poFieldStr {
				commit()
			}
			msgid = extractQuoted(line)
			field = poFieldID
		case strings.HasPrefix(line, "msgstr"):
			msgstr = extractQuoted(line)
			field = poFieldStr
		case line[0] == '"':
			switch field {
			case poFieldID:
				msgid += extractQuoted(line)
			case poFieldStr:
				msgstr += extractQuoted(line)
			}
		}
	}
	commit()

	return entries, nil
}

// Serialize emits a header block with a language/encoding pseudo-entry
// followed by sorted msgid/msgstr pairs.
func (c *POCodec) Serialize(lang string, entries map[string]string) (string, error) {
	var b strings.Builder
	b.WriteString("# " + lang + " translations\n")
	b.WriteString("# Generated by " + generatorName + "\n")
	b.WriteString("msgid \"\"\n")
	b.WriteString("msgstr \"\"\n")
	b.WriteString("\"Language: " + lang + "\\n\"\n")
	b.WriteString("\"Content-Type: text/plain; charset=UTF-8\\n\"\n\n")

	for _, key := range sortedKeys(entries) {
		b.WriteString("msgid \"" + poEscape(key) + "\"\n")
		b.WriteString("msgstr \"" + poEscape(entries[key]) + "\"\n\n")
	}

	return b.String(), nil
}

// extractQuoted returns the content between the first and last double quote
// of a line, with escape sequences resolved. Returns "" when the line holds
// no quoted string.
func extractQuoted(line string) string {
	start := strings.IndexByte(line, '"')
	if start < 0 {
		return ""
	}
	end := strings.LastIndexByte(line, '"')
	if end <= start {
		return ""
	}
	return unescapeValue(line[start+1 : end])
}

func poEscape(s string) string {
	r := strings.NewReplacer(
		"\\", `\\`,
		"\"", `\"`,
		"\n", `\n`,
		"\t", `\t`,
		"\r", `\r`,
	)
	return r.Replace(s)
}
