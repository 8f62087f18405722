// Package config loads runtime configuration for the bookkeeper client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the bookkeeper API
//	-f string   path of the session state file
//	-l string   log level (debug|info|warn|error)
//	-t int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000",
//	  "session_file": "session.json",
//	  "log_level": "info",
//	  "request_timeout": 15
//	}
//
// Primary API
//
//   - type Config                     — holds the API address, session file and log settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
