package llm

import (
	"os"
	"strconv"
)

// Config holds all configuration for the AI augmentation subsystem.
// Augmentation is disabled by default; a missing API key keeps it off even
// when enabled, because plan generation must never depend on the network.
type Config struct {
	Enabled     bool
	APIKey      string
	Endpoint    string
	Model       string
	MaxTokens   int
	Temperature float64
	TimeoutMs   int
	MaxRetries  int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Endpoint:    "https://api.anthropic.com",
		Model:       "claude-3-5-sonnet-20241022",
		MaxTokens:   2000,
		Temperature: 0.3,
		TimeoutMs:   30000,
		MaxRetries:  1,
	}
}

// LoadConfig reads configuration from ODOOPLAN_AI_* environment variables,
// falling back to defaults for any unset value.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("ODOOPLAN_AI_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("ODOOPLAN_AI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("ODOOPLAN_AI_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("ODOOPLAN_AI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ODOOPLAN_AI_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("ODOOPLAN_AI_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("ODOOPLAN_AI_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("ODOOPLAN_AI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			cfg.Temperature = f
		}
	}

	return cfg
}

// Ready reports whether the augmenter can actually be called.
func (c Config) Ready() bool {
	return c.Enabled && c.APIKey != ""
}
