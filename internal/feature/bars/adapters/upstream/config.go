// Package upstream provides the HTTP client for the external market-data
// provider this gateway depends on.
package upstream

import (
	"os"
	"time"
)

// Config holds the upstream provider client settings.
type Config struct {
	BaseURL string        // Provider base URL, e.g. "http://127.0.0.1:9000"
	Timeout time.Duration // Whole-request timeout; expiry counts as provider failure
}

// LoadConfig reads the upstream settings from environment variables.
// MARKET_UPSTREAM_URL defaults to local loopback so the gateway runs (and
// falls back to synthesis) without any provider configured.
func LoadConfig() Config {
	base := os.Getenv("MARKET_UPSTREAM_URL")
	if base == "" {
		base = "http://127.0.0.1:9000"
	}
	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
