package stats

import (
	"os"
	"strconv"
)

// Config holds all configuration for the stats service client.
type Config struct {
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
}

// DefaultConfig returns a Config with sensible defaults, pointing at a
// locally running statsd.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:8080",
		TimeoutMs:  5000,
		MaxRetries: 1,
		LogCalls:   false,
	}
}

// LoadConfig reads stats client configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CINEBOT_STATS_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("CINEBOT_STATS_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("CINEBOT_STATS_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("CINEBOT_STATS_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}
