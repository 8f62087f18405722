package config

import "time"

// Config holds runtime settings for the bookkeeper client.
//
// Fields:
//   - APIBaseURL: base URL of the remote bookkeeping API (no trailing slash).
//   - SessionFile: path of the file the session token and user are persisted to.
//   - LogLevel: minimum level for log output.
//   - RequestTimeout: per-request timeout applied by the HTTP transport.
type Config struct {
	APIBaseURL     string
	SessionFile    string
	LogLevel       string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000"
	c.SessionFile = "session.json"
	c.LogLevel = "info"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
