package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleRegistry(t *testing.T) {
	registry := NewRoleRegistry(map[string]*RoleConfig{
		"analyst": {Model: "m1"},
		"skeptic": {Model: "m2"},
	})

	assert.Equal(t, 2, registry.Len())
	assert.True(t, registry.Has("analyst"))
	assert.False(t, registry.Has("ghost"))

	role, err := registry.Get("analyst")
	require.NoError(t, err)
	assert.Equal(t, "m1", role.Model)

	_, err = registry.Get("ghost")
	assert.ErrorIs(t, err, ErrRoleNotFound)

	// GetAll returns a copy; mutating it does not affect the registry
	all := registry.GetAll()
	delete(all, "analyst")
	assert.True(t, registry.Has("analyst"))
}

func TestCouncilRegistry(t *testing.T) {
	registry := NewCouncilRegistry(map[string]*CouncilConfig{
		"general": {Roles: []string{"analyst", "skeptic"}, Chairman: "m"},
	})

	assert.Equal(t, 1, registry.Len())
	assert.True(t, registry.Has("general"))

	council, err := registry.Get("general")
	require.NoError(t, err)
	assert.Len(t, council.Roles, 2)

	_, err = registry.Get("ghost")
	assert.ErrorIs(t, err, ErrCouncilNotFound)
}

func TestLLMProviderRegistry(t *testing.T) {
	registry := NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"openrouter": {Type: LLMProviderTypeOpenRouter, APIKeyEnv: "OPENROUTER_API_KEY"},
	})

	assert.Equal(t, 1, registry.Len())

	provider, err := registry.Get("openrouter")
	require.NoError(t, err)
	assert.Equal(t, LLMProviderTypeOpenRouter, provider.Type)

	_, err = registry.Get("ghost")
	assert.ErrorIs(t, err, ErrLLMProviderNotFound)
}
