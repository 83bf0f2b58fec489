package config

import (
	"fmt"
	"sync"
)

// SamplingConfig holds per-role sampling overrides. Pointer fields
// distinguish "unset, let the provider decide" from an explicit zero.
type SamplingConfig struct {
	Temperature      *float64 `yaml:"temperature,omitempty"`
	MaxTokens        *int     `yaml:"max_tokens,omitempty"`
	TopP             *float64 `yaml:"top_p,omitempty"`
	PresencePenalty  *float64 `yaml:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `yaml:"frequency_penalty,omitempty"`
}

// RoleConfig defines a named role preset: the system prompt that shapes the
// role's perspective, the model that answers for it, and sampling overrides.
type RoleConfig struct {
	// Human-readable description (optional)
	Description string `yaml:"description,omitempty"`

	// System prompt establishing the role's perspective (optional)
	SystemPrompt string `yaml:"system_prompt,omitempty"`

	// Model identifier the role answers with (required)
	Model string `yaml:"model" validate:"required"`

	// Sampling parameter overrides for generation
	Sampling SamplingConfig `yaml:"sampling,omitempty"`

	// Weight is echoed in results but does not affect aggregation
	Weight float64 `yaml:"weight,omitempty"`
}

// RoleRegistry stores role preset configurations in memory with thread-safe access
type RoleRegistry struct {
	roles map[string]*RoleConfig
	mu    sync.RWMutex
}

// NewRoleRegistry creates a new role registry
func NewRoleRegistry(roles map[string]*RoleConfig) *RoleRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*RoleConfig, len(roles))
	for k, v := range roles {
		copied[k] = v
	}
	return &RoleRegistry{
		roles: copied,
	}
}

// Get retrieves a role configuration by name (thread-safe)
func (r *RoleRegistry) Get(name string) (*RoleConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	role, exists := r.roles[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrRoleNotFound, name)
	}
	return role, nil
}

// GetAll returns all role configurations (thread-safe, returns copy)
func (r *RoleRegistry) GetAll() map[string]*RoleConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*RoleConfig, len(r.roles))
	for k, v := range r.roles {
		result[k] = v
	}
	return result
}

// Has checks if a role exists in the registry (thread-safe)
func (r *RoleRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.roles[name]
	return exists
}

// Len returns the number of roles in the registry (thread-safe)
func (r *RoleRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.roles)
}
