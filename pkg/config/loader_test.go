package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chernandezosma/Adventure-Designer-Studio-sub000/pkg/config"
)

type testConfig struct {
	Dir      string `env:"TEST_CFG_DIR" envDefault:"./data"`
	Fallback string `env:"TEST_CFG_FALLBACK" envDefault:"en_US"`
	Verbose  bool   `env:"TEST_CFG_VERBOSE" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "./data", cfg.Dir)
		assert.Equal(t, "en_US", cfg.Fallback)
		assert.False(t, cfg.Verbose)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_DIR", "/srv/translations")
		t.Setenv("TEST_CFG_VERBOSE", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/srv/translations", cfg.Dir)
		assert.True(t, cfg.Verbose)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_CFG_VERBOSE", "not-a-bool")

		var cfg testConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("TEST_CFG_VERBOSE", "42x")

		require.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with valid env", func(t *testing.T) {
		t.Setenv("TEST_CFG_FALLBACK", "es_ES")

		var cfg testConfig
		require.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "es_ES", cfg.Fallback)
	})
}
