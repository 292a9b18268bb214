package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrcompose/core/config"
)

type testConfig struct {
	Size    int           `env:"CONFIG_TEST_SIZE" envDefault:"300"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"5s"`
	Name    string        `env:"CONFIG_TEST_NAME"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED_VALUE,required"`
}

// Tests touch the process environment and the package cache, so they run sequentially.

func TestLoad(t *testing.T) {
	t.Run("applies defaults and environment", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_SIZE", "512")
		t.Setenv("CONFIG_TEST_NAME", "qr")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, 512, cfg.Size)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.Equal(t, "qr", cfg.Name)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_SIZE", "128")

		var first testConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("CONFIG_TEST_SIZE", "1024")
		var second testConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, first, second)
		assert.Equal(t, 128, second.Size)
	})

	t.Run("reports parse errors", func(t *testing.T) {
		config.Reset()
		t.Setenv("CONFIG_TEST_SIZE", "not-a-number")

		var cfg testConfig
		assert.Error(t, config.Load(&cfg))
	})

	t.Run("missing required variable", func(t *testing.T) {
		config.Reset()

		var cfg requiredConfig
		assert.Error(t, config.Load(&cfg))
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})

	t.Run("nil target", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilTarget)
	})
}
