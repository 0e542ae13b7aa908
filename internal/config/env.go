package config

import "github.com/kelseyhightower/envconfig"

// envPrefix namespaces the environment variables, e.g. USERS_API_ENDPOINT.
const envPrefix = "USERS"

// parseEnv overlays Config with values from the environment. Variables
// that are not set leave the current values untouched.
func parseEnv(cfg *Config) {
	if err := envconfig.Process(envPrefix, cfg); err != nil {
		panic(err)
	}
}
