package i18n_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chernandezosma/Adventure-Designer-Studio-sub000/pkg/i18n"
)

func TestPropertiesCodecParse(t *testing.T) {
	t.Parallel()
	codec := i18n.NewPropertiesCodec()

	t.Run("basic key=value lines", func(t *testing.T) {
		t.Parallel()
		content := "hello=Hello\n" +
			"menu.file = File \n" +
			"  empty.value =\n"

		entries, err := codec.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "Hello", entries["hello"])
		assert.Equal(t, "File", entries["menu.file"])
		assert.Equal(t, "", entries["empty.value"])
		assert.Len(t, entries, 3)
	})

	t.Run("comments and blank lines skipped", func(t *testing.T) {
		t.Parallel()
		content := "# hash comment\n" +
			"; semicolon comment\n" +
			"\n" +
			"   \n" +
			"key=value\n"

		entries, err := codec.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"key": "value"}, entries)
	})

	t.Run("malformed lines skipped not fatal", func(t *testing.T) {
		t.Parallel()
		content := "no equals sign here\n" +
			"valid=yes\n" +
			"another bare line\n"

		entries, err := codec.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, map[string]string{"valid": "yes"}, entries)
	})

	t.Run("surrounding quotes stripped once", func(t *testing.T) {
		t.Parallel()
		content := "double=\"Hello\"\n" +
			"single='World'\n" +
			"nested=\"'both'\"\n" +
			"unmatched=\"half\n"

		entries, err := codec.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "Hello", entries["double"])
		assert.Equal(t, "World", entries["single"])
		assert.Equal(t, "'both'", entries["nested"])
		assert.Equal(t, "\"half", entries["unmatched"])
	})

	t.Run("escape sequences resolved", func(t *testing.T) {
		t.Parallel()
		content := `multiline=line one\nline two` + "\n" +
			`tabbed=a\tb` + "\n" +
			`backslash=C:\\path` + "\n" +
			`quotes=say \"hi\" and \'bye\'` + "\n"

		entries, err := codec.Parse(context.Background(), content)
		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", entries["multiline"])
		assert.Equal(t, "a\tb", entries["tabbed"])
		assert.Equal(t, `C:\path`, entries["backslash"])
		assert.Equal(t, `say "hi" and 'bye'`, entries["quotes"])
	})

	t.Run("value may contain equals", func(t *testing.T) {
		t.Parallel()
		entries, err := codec.Parse(context.Background(), "formula=a=b+c\n")
		require.NoError(t, err)
		assert.Equal(t, "a=b+c", entries["formula"])
	})

	t.Run("context cancellation", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := codec.Parse(ctx, "key=value")
		require.ErrorIs(t, err, i18n.ErrParsingCancelled)
	})
}

func TestPropertiesCodecSerialize(t *testing.T) {
	t.Parallel()
	codec := i18n.NewPropertiesCodec()

	t.Run("sorted output with header", func(t *testing.T) {
		t.Parallel()
		out, err := codec.Serialize("es_ES", map[string]string{
			"zeta":  "last",
			"alpha": "first",
		})
		require.NoError(t, err)
		assert.Contains(t, out, "# es_ES translations")
		assert.Less(t, strings.Index(out, "alpha="), strings.Index(out, "zeta="))
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		original := map[string]string{
			"plain":     "value",
			"multiline": "one\ntwo",
			"tabs":      "a\tb",
			"backslash": `C:\path`,
		}

		out, err := codec.Serialize("en_US", original)
		require.NoError(t, err)

		parsed, err := codec.Parse(context.Background(), out)
		require.NoError(t, err)
		assert.Equal(t, original, parsed)
	})
}
