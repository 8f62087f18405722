package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags", args: []string{"cmd", "-a", "http://api:8080", "-f", "/tmp/s.json", "-l", "debug", "-t", "30"},
			expected: &Config{APIBaseURL: "http://api:8080", SessionFile: "/tmp/s.json", LogLevel: "debug", RequestTimeout: 30 * time.Second},
		},
		{
			name: "defaults survive", args: []string{"cmd"},
			expected: &Config{APIBaseURL: "http://localhost:5000", SessionFile: "session.json", LogLevel: "info", RequestTimeout: 15 * time.Second},
		},
		{
			name: "bad timeout panics", args: []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			defer func() { os.Args = origArgs }()
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				assert.Panics(t, func() { parseFlags(cfg) })
				return
			}

			parseFlags(cfg)
			if diff := cmp.Diff(tt.expected, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseJson(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	file := t.TempDir() + "/conf.json"
	require.NoError(t, os.WriteFile(file, []byte(`{"api_base_url":"http://json:9000","request_timeout":5}`), 0o600))

	os.Args = []string{"cmd", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "http://json:9000", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	// fields not present in the JSON keep their defaults
	assert.Equal(t, "session.json", cfg.SessionFile)
	assert.Equal(t, "info", cfg.LogLevel)
}
