package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/littletree-next/ltwfav/internal/config"
)

func TestMessageConstructors(t *testing.T) {
	t.Run("NewSystemMessage", func(t *testing.T) {
		msg := NewSystemMessage("You are a classification assistant")
		assert.Equal(t, "system", msg.Role)
		assert.Equal(t, "You are a classification assistant", msg.Content)
	})

	t.Run("NewUserMessage", func(t *testing.T) {
		msg := NewUserMessage("Hello!")
		assert.Equal(t, "user", msg.Role)
		assert.Equal(t, "Hello!", msg.Content)
	})
}

func TestDetectProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LLMConfig
		expected string
	}{
		{
			name:     "no keys",
			cfg:      config.LLMConfig{},
			expected: "",
		},
		{
			name:     "anthropic only",
			cfg:      config.LLMConfig{AnthropicAPIKey: "sk-ant-xxx"},
			expected: "anthropic",
		},
		{
			name:     "openai only",
			cfg:      config.LLMConfig{OpenAIAPIKey: "sk-xxx"},
			expected: "openai",
		},
		{
			name: "anthropic priority over openai",
			cfg: config.LLMConfig{
				AnthropicAPIKey: "sk-ant-xxx",
				OpenAIAPIKey:    "sk-xxx",
			},
			expected: "anthropic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detectProvider(tt.cfg))
		})
	}
}

func TestNewProvider(t *testing.T) {
	t.Run("no keys", func(t *testing.T) {
		_, err := NewProvider(config.LLMConfig{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no LLM provider configured")
	})

	t.Run("auto-detect anthropic", func(t *testing.T) {
		provider, err := NewProvider(config.LLMConfig{AnthropicAPIKey: "sk-ant-xxx"})
		require.NoError(t, err)
		assert.Equal(t, "anthropic", provider.Name())
	})

	t.Run("auto-detect openai", func(t *testing.T) {
		provider, err := NewProvider(config.LLMConfig{OpenAIAPIKey: "sk-xxx"})
		require.NoError(t, err)
		assert.Equal(t, "openai", provider.Name())
	})

	t.Run("explicit provider wins over detection order", func(t *testing.T) {
		provider, err := NewProvider(config.LLMConfig{
			DefaultProvider: "openai",
			AnthropicAPIKey: "sk-ant-xxx",
			OpenAIAPIKey:    "sk-xxx",
		})
		require.NoError(t, err)
		assert.Equal(t, "openai", provider.Name())
	})

	t.Run("explicit provider without its key", func(t *testing.T) {
		_, err := NewProvider(config.LLMConfig{
			DefaultProvider: "anthropic",
			OpenAIAPIKey:    "sk-xxx",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewProvider(config.LLMConfig{
			DefaultProvider: "cohere",
			OpenAIAPIKey:    "sk-xxx",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown LLM provider")
	})

	t.Run("custom model is passed through", func(t *testing.T) {
		provider, err := NewProvider(config.LLMConfig{
			AnthropicAPIKey: "sk-ant-xxx",
			DefaultModel:    "claude-3-5-haiku-20241022",
		})
		require.NoError(t, err)
		anthropicProvider, ok := provider.(*AnthropicProvider)
		require.True(t, ok)
		assert.Equal(t, "claude-3-5-haiku-20241022", anthropicProvider.model)
	})
}
