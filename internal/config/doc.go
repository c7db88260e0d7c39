// Package config loads runtime configuration for the irisctl client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//	-d string   local data directory
//
// Environment variables
//
//	IRIS_API_BASE_URL   base URL of the backend REST API
//	IRIS_TIMEOUT        request timeout (time.ParseDuration syntax)
//	IRIS_DATA_DIR       local data directory
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8080/api",
//	  "timeout": "30s",
//	  "data_dir": "irisctl-data"
//	}
package config
