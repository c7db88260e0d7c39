package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/irisrec/irisctl/internal/flagx"
	"github.com/irisrec/irisctl/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL string         `json:"base_url"`
	Timeout timex.Duration `json:"timeout"`
	DataDir string         `json:"data_dir"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag via flagx.JsonConfigFlags; when no
// such flag is given, nothing is loaded. Read or unmarshal errors panic,
// callers may recover if desired.
//
// Only fields present and non-zero in the JSON override the current values,
// so a partial file composes with the environment overlay.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.Timeout.Duration != 0 {
		cfg.Timeout = time.Duration(jc.Timeout.Duration)
	}
	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
}
