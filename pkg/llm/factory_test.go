package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/pkg/config"
)

func TestNewProviderFromConfig(t *testing.T) {
	t.Run("openrouter", func(t *testing.T) {
		t.Setenv("TEST_ROUTER_KEY", "sk-test")
		provider, err := NewProviderFromConfig(&config.LLMProviderConfig{
			Type:      config.LLMProviderTypeOpenRouter,
			APIKeyEnv: "TEST_ROUTER_KEY",
		})
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.NoError(t, provider.Close())
	})

	t.Run("grpc", func(t *testing.T) {
		provider, err := NewProviderFromConfig(&config.LLMProviderConfig{
			Type: config.LLMProviderTypeGRPC,
			Addr: "localhost:50051",
		})
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.NoError(t, provider.Close())
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := NewProviderFromConfig(&config.LLMProviderConfig{Type: "smoke-signals"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported LLM provider type")
	})
}

func TestSamplingFromConfig(t *testing.T) {
	temp := 0.3
	maxTokens := 500

	got := SamplingFromConfig(config.SamplingConfig{Temperature: &temp, MaxTokens: &maxTokens})
	require.NotNil(t, got.Temperature)
	assert.Equal(t, 0.3, *got.Temperature)
	require.NotNil(t, got.MaxTokens)
	assert.Equal(t, 500, *got.MaxTokens)
	assert.Nil(t, got.TopP)
}
