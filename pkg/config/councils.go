package config

import (
	"fmt"
	"sync"
)

// OptionsConfig defines deliberation options carried by council presets and
// system defaults. Pointer fields distinguish "unset, use default" from an
// explicit false.
type OptionsConfig struct {
	OutputMode  OutputMode        `yaml:"output_mode,omitempty"`
	Anonymize   *bool             `yaml:"anonymize,omitempty"`
	Review      *bool             `yaml:"review,omitempty"`
	Reviewers   []string          `yaml:"reviewers,omitempty"`
	Aggregation AggregationMethod `yaml:"aggregation,omitempty"`
}

// CouncilConfig defines a named council preset: which role presets sit at
// the table, the chairman model that writes the synthesis, and option
// overrides applied to deliberations created from the preset.
type CouncilConfig struct {
	// Human-readable description (optional)
	Description string `yaml:"description,omitempty"`

	// Role preset names seated at the council (required, min 2)
	Roles []string `yaml:"roles" validate:"required,min=2"`

	// Chairman model for synthesis. Required unless the preset's options
	// select perspectives-only output.
	Chairman string `yaml:"chairman,omitempty"`

	// Options applied to deliberations created from this preset
	Options *OptionsConfig `yaml:"options,omitempty"`
}

// CouncilRegistry stores council preset configurations in memory with thread-safe access
type CouncilRegistry struct {
	councils map[string]*CouncilConfig
	mu       sync.RWMutex
}

// NewCouncilRegistry creates a new council registry
func NewCouncilRegistry(councils map[string]*CouncilConfig) *CouncilRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*CouncilConfig, len(councils))
	for k, v := range councils {
		copied[k] = v
	}
	return &CouncilRegistry{
		councils: copied,
	}
}

// Get retrieves a council configuration by ID (thread-safe)
func (r *CouncilRegistry) Get(id string) (*CouncilConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	council, exists := r.councils[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCouncilNotFound, id)
	}
	return council, nil
}

// GetAll returns all council configurations (thread-safe, returns copy)
func (r *CouncilRegistry) GetAll() map[string]*CouncilConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make(map[string]*CouncilConfig, len(r.councils))
	for k, v := range r.councils {
		result[k] = v
	}
	return result
}

// Has checks if a council exists in the registry (thread-safe)
func (r *CouncilRegistry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.councils[id]
	return exists
}

// Len returns the number of councils in the registry (thread-safe)
func (r *CouncilRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.councils)
}
