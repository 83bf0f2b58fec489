package config

import "time"

// Defaults contains system-wide default configurations
// These values are used when a deliberation request doesn't specify its own values
type Defaults struct {
	// Council preset used when a request names neither a council nor roles
	Council string `yaml:"council,omitempty"`

	// LLM provider serving deliberations
	LLMProvider string `yaml:"llm_provider,omitempty"`

	// Deliberation option defaults (applied under request and preset overrides)
	Options *OptionsConfig `yaml:"options,omitempty"`

	// Bootstrap resampling rounds for ELO confidence intervals
	BootstrapRounds int `yaml:"bootstrap_rounds,omitempty" validate:"omitempty,min=1"`

	// Seed for the bootstrap RNG; fixed seed keeps intervals reproducible.
	// Zero means "use built-in default", not an unseeded RNG.
	BootstrapSeed int64 `yaml:"bootstrap_seed,omitempty"`

	// Wall-clock deadline for a whole deliberation
	DeliberationDeadline time.Duration `yaml:"deliberation_deadline,omitempty"`
}
