package i18n_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chernandezosma/Adventure-Designer-Studio-sub000/pkg/i18n"
)

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("explicit config", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		writeFile(t, dir, "pt_BR.properties", "hello=Olá\n")

		tr, err := i18n.NewFromConfig(context.Background(), i18n.Config{
			Dir:              dir,
			FallbackLanguage: "pt_BR",
		}, i18n.WithEnvironment(func(string) string { return "" }))
		require.NoError(t, err)

		assert.Equal(t, "pt_BR", tr.FallbackLanguage())
		assert.Equal(t, "Olá", tr.T("hello"))
	})

	t.Run("invalid fallback surfaces", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewFromConfig(context.Background(), i18n.Config{
			Dir:              t.TempDir(),
			FallbackLanguage: "nope",
		})
		var notSupported *i18n.ErrLocaleNotSupported
		require.ErrorAs(t, err, &notSupported)
	})
}

func TestNewFromEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de_DE.properties", "hello=Hallo\n")

	t.Setenv("I18N_DIR", dir)
	t.Setenv("I18N_FALLBACK_LANGUAGE", "de_DE")
	t.Setenv("I18N_LOG_MISSING", "true")

	tr, err := i18n.NewFromEnv(context.Background(),
		i18n.WithEnvironment(func(string) string { return "" }))
	require.NoError(t, err)

	assert.Equal(t, "de_DE", tr.FallbackLanguage())
	assert.Equal(t, "Hallo", tr.T("hello"))
}

func TestConfigDefaults(t *testing.T) {
	// The default directory must exist for construction to succeed.
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "translations"), 0o755))

	tr, err := i18n.NewFromEnv(context.Background(),
		i18n.WithEnvironment(func(string) string { return "" }))
	require.NoError(t, err)
	assert.Equal(t, "en_US", tr.FallbackLanguage())
}
