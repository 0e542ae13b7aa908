package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.APIEndpoint)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestParseEnv_OverlaysOnlySetVariables(t *testing.T) {
	t.Setenv("USERS_API_ENDPOINT", "http://localhost:8080")
	t.Setenv("USERS_LOG_LEVEL", "debug")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "http://localhost:8080", c.APIEndpoint)
	assert.Equal(t, "debug", c.LogLevel)
	// Unset variables keep the defaults.
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestParseEnv_DurationFromString(t *testing.T) {
	t.Setenv("USERS_REQUEST_TIMEOUT", "3s")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 3*time.Second, c.RequestTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "https://jsonplaceholder.typicode.com", cfg.APIEndpoint)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
