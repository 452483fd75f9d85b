package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "http://localhost:8080", cfg.Endpoint)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("CINEBOT_STATS_URL", "http://stats.example:9090")
	t.Setenv("CINEBOT_STATS_TIMEOUT_MS", "250")
	t.Setenv("CINEBOT_STATS_MAX_RETRIES", "3")
	t.Setenv("CINEBOT_STATS_LOG_CALLS", "true")

	cfg := LoadConfig()
	assert.Equal(t, "http://stats.example:9090", cfg.Endpoint)
	assert.Equal(t, 250, cfg.TimeoutMs)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("CINEBOT_STATS_TIMEOUT_MS", "-1")
	t.Setenv("CINEBOT_STATS_MAX_RETRIES", "not-a-number")

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig().TimeoutMs, cfg.TimeoutMs)
	assert.Equal(t, DefaultConfig().MaxRetries, cfg.MaxRetries)
}
