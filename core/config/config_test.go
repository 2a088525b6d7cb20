package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/crumbs/core/config"
	"github.com/dmitrymomot/crumbs/core/cookie"
)

type appConfig struct {
	Cookie  cookie.Config
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
}

type strictConfig struct {
	Port int `env:"TEST_STRICT_PORT,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "/", cfg.Cookie.Path)
		assert.Equal(t, "mc_", cfg.Cookie.Prefix)
		assert.Empty(t, cfg.Cookie.Domain)
		assert.False(t, cfg.Cookie.TrustProxy)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("COOKIE_PATH", "/app")
		t.Setenv("COOKIE_PREFIX", "app_")
		t.Setenv("COOKIE_DOMAIN", ".example.org")
		t.Setenv("COOKIE_SAME_SITE", "strict")
		t.Setenv("COOKIE_TRUST_PROXY", "true")

		var cfg appConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "/app", cfg.Cookie.Path)
		assert.Equal(t, "app_", cfg.Cookie.Prefix)
		assert.Equal(t, ".example.org", cfg.Cookie.Domain)
		assert.Equal(t, "strict", cfg.Cookie.SameSite)
		assert.True(t, cfg.Cookie.TrustProxy)
	})

	t.Run("cached per type", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		t.Setenv("COOKIE_PREFIX", "first_")

		var first appConfig
		require.NoError(t, config.Load(&first))

		t.Setenv("COOKIE_PREFIX", "second_")
		var second appConfig
		require.NoError(t, config.Load(&second))

		assert.Equal(t, "first_", second.Cookie.Prefix)
	})

	t.Run("parse error", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		var cfg strictConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsing)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	assert.Panics(t, func() {
		var cfg strictConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("TEST_STRICT_PORT", "8080")
	assert.NotPanics(t, func() {
		var cfg strictConfig
		config.MustLoad(&cfg)
		assert.Equal(t, 8080, cfg.Port)
	})
}
