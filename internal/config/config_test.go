package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLLMConfigDefaults(t *testing.T) {
	cfg := DefaultLLMConfig()

	assert.Empty(t, cfg.AnthropicAPIKey)
	assert.Empty(t, cfg.OpenAIAPIKey)
	assert.Empty(t, cfg.DefaultProvider) // Auto-detect
	assert.Empty(t, cfg.DefaultModel)    // Provider-specific defaults
	assert.Equal(t, 10, cfg.ClassifyRatePerMinute)
}

func TestLoadFromEnv(t *testing.T) {
	base := t.TempDir()
	t.Setenv("LTWFAV_DATA_DIR", base)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LTWFAV_LLM_PROVIDER", "openai")
	t.Setenv("LTWFAV_LLM_MODEL", "gpt-4o")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, base, cfg.BaseDir)
	assert.Equal(t, "sk-ant-test", cfg.LLM.AnthropicAPIKey)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAIAPIKey)
	assert.Equal(t, "openai", cfg.LLM.DefaultProvider)
	assert.Equal(t, "gpt-4o", cfg.LLM.DefaultModel)
}

func TestLoadCreatesDirectories(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "ltwfav")
	t.Setenv("LTWFAV_DATA_DIR", base)

	cfg, err := Load()
	require.NoError(t, err)

	assert.DirExists(t, cfg.BaseDir)
	assert.DirExists(t, GetPaths(cfg).FavoritesDir)
	// The exports directory must exist up front so a default-target export
	// lands inside it as favorites.ltwfav rather than becoming a file
	// named "exports".
	assert.DirExists(t, GetPaths(cfg).Exports)
}

func TestGetPaths(t *testing.T) {
	cfg := &Config{BaseDir: "/data/ltwfav"}
	paths := GetPaths(cfg)

	assert.Equal(t, filepath.Join("/data/ltwfav", "favorites"), paths.FavoritesDir)
	assert.Equal(t, filepath.Join("/data/ltwfav", "favorites", "favorites.json"), paths.FavoritesFile)
	assert.Equal(t, filepath.Join("/data/ltwfav", "exports"), paths.Exports)
	assert.Equal(t, filepath.Join("/data/ltwfav", "logs"), paths.Logs)
}

func TestDefaultBaseDir(t *testing.T) {
	dir := DefaultBaseDir()

	assert.NotEmpty(t, dir)
	assert.Contains(t, dir, "ltwfav")
}
