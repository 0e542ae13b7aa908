package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_NoFlagNoChange(t *testing.T) {
	origArgs := os.Args
	os.Args = []string{"cli"}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "https://jsonplaceholder.typicode.com", c.APIEndpoint)
}

func TestParseJson_OverlaysFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"api_endpoint": "http://localhost:9999", "request_timeout": "5s"}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	os.Args = []string{"cli", "-c", path}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, "http://localhost:9999", c.APIEndpoint)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "slog", c.LogBackend)
}

func TestParseJson_NanosecondDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"request_timeout": 2000000000}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	origArgs := os.Args
	os.Args = []string{"cli", "-config", path}
	t.Cleanup(func() { os.Args = origArgs })

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}
