package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names recognized by the client.
const (
	EnvBaseURL = "IRIS_API_BASE_URL"
	EnvTimeout = "IRIS_TIMEOUT"
	EnvDataDir = "IRIS_DATA_DIR"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first if it exists; variables
// already set in the environment win over the file, which is godotenv's
// default behavior.
//
// IRIS_TIMEOUT accepts time.ParseDuration syntax ("30s", "1m"). A value that
// does not parse is ignored and the previous timeout is kept.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
}
