package config

import (
	"sync"
	"time"
)

// BuiltinConfig holds all built-in configuration data.
// This provides default roles, councils, and LLM providers.
type BuiltinConfig struct {
	Roles           map[string]RoleConfig
	Councils        map[string]CouncilConfig
	LLMProviders    map[string]LLMProviderConfig
	DefaultCouncil  string
	DefaultProvider string
}

var (
	builtinConfig     *BuiltinConfig
	builtinConfigOnce sync.Once
)

// GetBuiltinConfig returns the singleton built-in configuration (thread-safe, lazy-initialized)
func GetBuiltinConfig() *BuiltinConfig {
	builtinConfigOnce.Do(initBuiltinConfig)
	return builtinConfig
}

func initBuiltinConfig() {
	builtinConfig = &BuiltinConfig{
		Roles:           initBuiltinRoles(),
		Councils:        initBuiltinCouncils(),
		LLMProviders:    initBuiltinLLMProviders(),
		DefaultCouncil:  "general",
		DefaultProvider: "openrouter",
	}
}

const defaultRoleModel = "anthropic/claude-sonnet-4"

func initBuiltinRoles() map[string]RoleConfig {
	return map[string]RoleConfig{
		"analyst": {
			Description: "Structured first-principles analysis",
			SystemPrompt: "You are a rigorous analyst. Break the question down into its " +
				"component parts, reason step by step from evidence, and state your " +
				"confidence in each conclusion. Prefer precision over breadth.",
			Model: defaultRoleModel,
		},
		"skeptic": {
			Description: "Challenges assumptions and identifies risks",
			SystemPrompt: "You are a skeptical critic. Challenge the assumptions behind " +
				"the question, surface failure modes and edge cases the obvious answer " +
				"misses, and argue the strongest counter-position you can defend.",
			Model: defaultRoleModel,
		},
		"pragmatist": {
			Description: "Focuses on actionable, real-world answers",
			SystemPrompt: "You are a pragmatist. Give the answer that is most useful in " +
				"practice: concrete, actionable, and honest about trade-offs. Skip " +
				"theory that does not change what the reader should do.",
			Model: defaultRoleModel,
		},
	}
}

func initBuiltinCouncils() map[string]CouncilConfig {
	return map[string]CouncilConfig{
		"general": {
			Description: "General-purpose three-seat council",
			Roles:       []string{"analyst", "skeptic", "pragmatist"},
			Chairman:    defaultRoleModel,
		},
	}
}

func initBuiltinLLMProviders() map[string]LLMProviderConfig {
	return map[string]LLMProviderConfig{
		"openrouter": {
			Type:          LLMProviderTypeOpenRouter,
			APIKeyEnv:     "OPENROUTER_API_KEY",
			MaxConcurrent: 32,
			Timeout:       120 * time.Second,
		},
	}
}
