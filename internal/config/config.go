// Package config handles application configuration management.
package config

import (
	"os"
)

// Config holds all application configuration.
type Config struct {
	// Base directory for all ltwfav data
	BaseDir string

	// LLM settings for AI-assisted classification
	LLM LLMConfig
}

// LLMConfig holds LLM provider configuration for favorite classification.
type LLMConfig struct {
	// API keys for different providers
	AnthropicAPIKey string
	OpenAIAPIKey    string

	// Default provider: "anthropic" or "openai" (auto-detected if empty)
	DefaultProvider string
	// Default model (provider-specific, uses sensible default if empty)
	DefaultModel string

	// ClassifyRatePerMinute caps classification requests sent to the provider.
	ClassifyRatePerMinute int
}

// DefaultLLMConfig returns sensible defaults for LLM configuration.
func DefaultLLMConfig() LLMConfig {
	return LLMConfig{
		DefaultProvider:       "",
		DefaultModel:          "",
		ClassifyRatePerMinute: 10,
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		BaseDir: DefaultBaseDir(),
		LLM:     DefaultLLMConfig(),
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if dir := os.Getenv("LTWFAV_DATA_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		cfg.LLM.AnthropicAPIKey = apiKey
	}

	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		cfg.LLM.OpenAIAPIKey = apiKey
	}

	if provider := os.Getenv("LTWFAV_LLM_PROVIDER"); provider != "" {
		cfg.LLM.DefaultProvider = provider
	}

	if model := os.Getenv("LTWFAV_LLM_MODEL"); model != "" {
		cfg.LLM.DefaultModel = model
	}

	if err := ensureDirectories(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ensureDirectories creates required directories if they don't exist.
func ensureDirectories(cfg *Config) error {
	paths := GetPaths(cfg)
	dirs := []string{
		cfg.BaseDir,
		paths.FavoritesDir,
		paths.Exports,
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
