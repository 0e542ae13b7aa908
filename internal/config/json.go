package config

import (
	"encoding/json"
	"os"

	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/flagx"
	"github.com/Ankur-Kumar-4/synergy-labs-task/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It
// relies on timex.Duration so intervals can be given either as strings
// like "15s" or as integer nanoseconds.
type JsonConfig struct {
	APIEndpoint    string         `json:"api_endpoint"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	LogLevel       string         `json:"log_level"`
	LogBackend     string         `json:"log_backend"`
}

// parseJson overlays Config with values loaded from the JSON file named
// by the -c/-config flag. Without the flag nothing is loaded. Fields
// absent from the file keep their current values. Read or unmarshal
// errors panic; config must be valid before anything else starts.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIEndpoint != "" {
		cfg.APIEndpoint = jc.APIEndpoint
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
}
