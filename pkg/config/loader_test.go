package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfigDir(t *testing.T) string {
	t.Helper()
	configDir := t.TempDir()

	plenumYAML := `
roles:
  historian:
    description: "Historical perspective"
    system_prompt: "You reason from historical precedent."
    model: "openai/gpt-5"
    sampling:
      temperature: 0.8
councils:
  debate:
    description: "Two-seat debate"
    roles: [historian, skeptic]
    chairman: "openai/gpt-5"
defaults:
  council: debate
queue:
  worker_count: 3
system:
  dashboard_url: "https://plenum.example.com"
  slack:
    enabled: true
    channel: "C12345678"
`
	err := os.WriteFile(filepath.Join(configDir, "plenum.yaml"), []byte(plenumYAML), 0644)
	require.NoError(t, err)

	providersYAML := `
llm_providers:
  gateway:
    type: grpc
    addr: "localhost:50051"
`
	err = os.WriteFile(filepath.Join(configDir, "llm-providers.yaml"), []byte(providersYAML), 0644)
	require.NoError(t, err)

	return configDir
}

func TestInitialize(t *testing.T) {
	configDir := setupTestConfigDir(t)

	// Required by the built-in openrouter provider
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	ctx := context.Background()
	cfg, err := Initialize(ctx, configDir)

	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Verify registries are populated
	assert.NotNil(t, cfg.RoleRegistry)
	assert.NotNil(t, cfg.CouncilRegistry)
	assert.NotNil(t, cfg.LLMProviderRegistry)
	assert.NotNil(t, cfg.Defaults)

	// Verify built-in configs are loaded alongside user ones
	assert.True(t, cfg.RoleRegistry.Has("analyst"))
	assert.True(t, cfg.RoleRegistry.Has("historian"))
	assert.True(t, cfg.CouncilRegistry.Has("general"))
	assert.True(t, cfg.CouncilRegistry.Has("debate"))
	assert.True(t, cfg.LLMProviderRegistry.Has("openrouter"))
	assert.True(t, cfg.LLMProviderRegistry.Has("gateway"))

	// User YAML overrides apply
	historian, err := cfg.GetRole("historian")
	require.NoError(t, err)
	assert.Equal(t, "openai/gpt-5", historian.Model)
	require.NotNil(t, historian.Sampling.Temperature)
	assert.Equal(t, 0.8, *historian.Sampling.Temperature)

	// Defaults resolved: user-set council, built-in fill for the rest
	assert.Equal(t, "debate", cfg.Defaults.Council)
	assert.Equal(t, "openrouter", cfg.Defaults.LLMProvider)
	assert.Equal(t, 1000, cfg.Defaults.BootstrapRounds)
	assert.Equal(t, int64(1), cfg.Defaults.BootstrapSeed)
	assert.Equal(t, 10*time.Minute, cfg.Defaults.DeliberationDeadline)

	// Queue: user worker_count merged over built-in defaults
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5, cfg.Queue.MaxConcurrentDeliberations)
	assert.Equal(t, 1*time.Second, cfg.Queue.PollInterval)

	// System config resolved
	assert.Equal(t, "https://plenum.example.com", cfg.DashboardURL)
	assert.True(t, cfg.Slack.Enabled)
	assert.Equal(t, "C12345678", cfg.Slack.Channel)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Slack.TokenEnv)
	assert.Equal(t, 365, cfg.Retention.DeliberationRetentionDays)

	stats := cfg.Stats()
	assert.Greater(t, stats.Roles, 3)
	assert.Greater(t, stats.Councils, 1)
	assert.Equal(t, 2, stats.LLMProviders)
}

func TestInitializeConfigNotFound(t *testing.T) {
	ctx := context.Background()
	_, err := Initialize(ctx, "/nonexistent/directory")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	configDir := t.TempDir()

	err := os.WriteFile(filepath.Join(configDir, "plenum.yaml"), []byte(`{{{`), 0644)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = Initialize(ctx, configDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}

func TestInitializeMissingProvidersFileUsesBuiltins(t *testing.T) {
	configDir := t.TempDir()
	err := os.WriteFile(filepath.Join(configDir, "plenum.yaml"), []byte("{}\n"), 0644)
	require.NoError(t, err)

	t.Setenv("OPENROUTER_API_KEY", "test-key")

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)
	assert.True(t, cfg.LLMProviderRegistry.Has("openrouter"))
	assert.Equal(t, 1, cfg.Stats().LLMProviders)
}

func TestInitializeValidationFailure(t *testing.T) {
	configDir := t.TempDir()

	// Council references a role that does not exist
	invalidConfig := `
councils:
  broken:
    roles: [ghost, analyst]
    chairman: "openai/gpt-5"
`
	err := os.WriteFile(filepath.Join(configDir, "plenum.yaml"), []byte(invalidConfig), 0644)
	require.NoError(t, err)

	t.Setenv("OPENROUTER_API_KEY", "test-key")

	_, err = Initialize(context.Background(), configDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration validation failed")

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestInitializeEnvExpansion(t *testing.T) {
	configDir := t.TempDir()

	t.Setenv("PLENUM_CHAIRMAN", "google/gemini-2.5-pro")
	t.Setenv("OPENROUTER_API_KEY", "test-key")

	plenumYAML := `
councils:
  expanded:
    roles: [analyst, skeptic]
    chairman: "{{.PLENUM_CHAIRMAN}}"
`
	err := os.WriteFile(filepath.Join(configDir, "plenum.yaml"), []byte(plenumYAML), 0644)
	require.NoError(t, err)

	cfg, err := Initialize(context.Background(), configDir)
	require.NoError(t, err)

	expanded, err := cfg.GetCouncil("expanded")
	require.NoError(t, err)
	assert.Equal(t, "google/gemini-2.5-pro", expanded.Chairman)
}
