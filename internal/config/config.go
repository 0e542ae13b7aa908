// Package config assembles runtime settings from defaults, environment
// variables, an optional JSON file and command-line flags, in that
// order of precedence (later sources win).
package config

import "time"

// Config holds runtime settings for the user directory CLI.
//
// Fields:
//   - APIEndpoint: base URL of the read-only placeholder API.
//   - RequestTimeout: upper bound for the single startup fetch.
//   - LogLevel: debug | info | warn | error.
//   - LogBackend: slog | zap.
type Config struct {
	APIEndpoint    string        `envconfig:"API_ENDPOINT"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
	LogBackend     string        `envconfig:"LOG_BACKEND"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIEndpoint = "https://jsonplaceholder.typicode.com"
	c.RequestTimeout = 15 * time.Second
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// LoadConfig constructs a Config, applies defaults, then overlays
// values from the environment, JSON (if present) and command-line
// flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
