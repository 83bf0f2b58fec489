package services

import (
	"testing"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/pkg/config"
)

// setupTestDeliberationService creates a DeliberationService backed by a
// minimal valid configuration: three role presets, two councils, defaults.
func setupTestDeliberationService(_ *testing.T, client *ent.Client) *DeliberationService {
	roleRegistry := config.NewRoleRegistry(map[string]*config.RoleConfig{
		"analyst": {
			SystemPrompt: "You are a careful analyst.",
			Model:        "test/model-a",
		},
		"skeptic": {
			SystemPrompt: "You challenge assumptions.",
			Model:        "test/model-b",
		},
		"pragmatist": {
			SystemPrompt: "You focus on what ships.",
			Model:        "test/model-c",
			Weight:       2.0,
		},
	})

	councilRegistry := config.NewCouncilRegistry(map[string]*config.CouncilConfig{
		"general": {
			Roles:    []string{"analyst", "skeptic", "pragmatist"},
			Chairman: "test/chairman",
		},
		"pair": {
			Roles:    []string{"analyst", "skeptic"},
			Chairman: "test/chairman",
			Options: &config.OptionsConfig{
				OutputMode: config.OutputModePerspectives,
			},
		},
	})

	cfg := &config.Config{
		Defaults: &config.Defaults{
			Council:     "general",
			LLMProvider: "openrouter",
		},
		RoleRegistry:        roleRegistry,
		CouncilRegistry:     councilRegistry,
		LLMProviderRegistry: config.NewLLMProviderRegistry(nil),
	}

	return NewDeliberationService(client, cfg)
}
