package llm

import (
	"fmt"
	"os"

	"github.com/plenumhq/plenum/pkg/config"
)

// NewProviderFromConfig builds a Provider from registry configuration.
// The result is wrapped in a concurrency limiter sized by max_concurrent.
func NewProviderFromConfig(cfg *config.LLMProviderConfig) (Provider, error) {
	var provider Provider

	switch cfg.Type {
	case config.LLMProviderTypeOpenRouter:
		provider = NewOpenRouter(OpenRouterConfig{
			BaseURL: cfg.BaseURL,
			APIKey:  os.Getenv(cfg.APIKeyEnv),
			Timeout: cfg.Timeout,
			Referer: cfg.Referer,
			Title:   cfg.Title,
		})

	case config.LLMProviderTypeGRPC:
		grpcProvider, err := NewGRPCProvider(cfg.Addr)
		if err != nil {
			return nil, err
		}
		provider = grpcProvider

	default:
		return nil, fmt.Errorf("unsupported LLM provider type: %s", cfg.Type)
	}

	return Limit(provider, cfg.MaxConcurrent), nil
}

// SamplingFromConfig converts registry sampling overrides to the request
// shape. Pointer fields carry over as-is; nil stays nil.
func SamplingFromConfig(s config.SamplingConfig) Sampling {
	return Sampling{
		Temperature:      s.Temperature,
		MaxTokens:        s.MaxTokens,
		TopP:             s.TopP,
		PresencePenalty:  s.PresencePenalty,
		FrequencyPenalty: s.FrequencyPenalty,
	}
}
