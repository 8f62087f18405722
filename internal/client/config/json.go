package config

import (
	"encoding/json"
	"os"
	"time"

	"bookkeeper/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Unset fields
// stay zero and leave the corresponding Config value untouched. The timeout
// is expressed in whole seconds.
type JsonConfig struct {
	APIBaseURL     string `json:"api_base_url"`
	SessionFile    string `json:"session_file"`
	LogLevel       string `json:"log_level"`
	RequestTimeout int    `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
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

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionFile != "" {
		cfg.SessionFile = jc.SessionFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.RequestTimeout != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout) * time.Second
	}
}
