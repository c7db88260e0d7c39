package config

import "time"

// Config holds runtime settings for the irisctl client.
//
// Fields:
//   - BaseURL: root of the backend REST API, including the /api prefix.
//   - Timeout: per-request HTTP timeout.
//   - DataDir: directory for the local session database and captured frames.
type Config struct {
	BaseURL string
	Timeout time.Duration
	DataDir string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://localhost:8080/api"
	c.Timeout = 30 * time.Second
	c.DataDir = "irisctl-data"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including a .env file if present), from JSON (if present)
// and from command-line flags (if present). Later sources take precedence
// over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
