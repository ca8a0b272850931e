package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.False(t, cfg.Enabled)
	assert.Equal(t, "https://api.anthropic.com", cfg.Endpoint)
	assert.Equal(t, "claude-3-5-sonnet-20241022", cfg.Model)
	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 1, cfg.MaxRetries)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ODOOPLAN_AI_ENABLED", "true")
	t.Setenv("ODOOPLAN_AI_API_KEY", "sk-test")
	t.Setenv("ODOOPLAN_AI_MODEL", "claude-3-haiku-20240307")
	t.Setenv("ODOOPLAN_AI_MAX_TOKENS", "4000")
	t.Setenv("ODOOPLAN_AI_TIMEOUT_MS", "5000")
	t.Setenv("ODOOPLAN_AI_TEMPERATURE", "0.7")

	cfg := LoadConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, "sk-test", cfg.APIKey)
	assert.Equal(t, "claude-3-haiku-20240307", cfg.Model)
	assert.Equal(t, 4000, cfg.MaxTokens)
	assert.Equal(t, 5000, cfg.TimeoutMs)
	assert.InDelta(t, 0.7, cfg.Temperature, 1e-9)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("ODOOPLAN_AI_MAX_TOKENS", "not-a-number")
	t.Setenv("ODOOPLAN_AI_TEMPERATURE", "3.5")

	cfg := LoadConfig()

	assert.Equal(t, 2000, cfg.MaxTokens)
	assert.InDelta(t, 0.3, cfg.Temperature, 1e-9)
}

func TestConfig_Ready(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Ready())

	cfg.Enabled = true
	assert.False(t, cfg.Ready(), "enabled without key is not ready")

	cfg.APIKey = "sk-test"
	assert.True(t, cfg.Ready())
}
