package config

import (
	"fmt"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: roles → LLM providers → councils → defaults
	// This ensures dependencies are validated before dependents

	if err := v.validateRoles(); err != nil {
		return fmt.Errorf("role validation failed: %w", err)
	}

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateCouncils(); err != nil {
		return fmt.Errorf("council validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateRoles() error {
	for name, role := range v.cfg.RoleRegistry.GetAll() {
		if role.Model == "" {
			return NewValidationError("role", name, "model", fmt.Errorf("model required"))
		}

		if role.Weight < 0 {
			return NewValidationError("role", name, "weight", fmt.Errorf("must not be negative"))
		}

		s := role.Sampling
		if s.Temperature != nil && (*s.Temperature < 0 || *s.Temperature > 2) {
			return NewValidationError("role", name, "sampling.temperature", fmt.Errorf("must be between 0 and 2"))
		}
		if s.MaxTokens != nil && *s.MaxTokens < 1 {
			return NewValidationError("role", name, "sampling.max_tokens", fmt.Errorf("must be at least 1"))
		}
		if s.TopP != nil && (*s.TopP <= 0 || *s.TopP > 1) {
			return NewValidationError("role", name, "sampling.top_p", fmt.Errorf("must be in (0, 1]"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateCouncils() error {
	for id, c := range v.cfg.CouncilRegistry.GetAll() {
		// A pairwise review needs at least two seats
		if len(c.Roles) < 2 {
			return NewValidationError("council", id, "roles", fmt.Errorf("at least two roles required"))
		}

		seen := make(map[string]bool, len(c.Roles))
		for _, roleName := range c.Roles {
			if !v.cfg.RoleRegistry.Has(roleName) {
				return NewValidationError("council", id, "roles", fmt.Errorf("role '%s' not found", roleName))
			}
			if seen[roleName] {
				return NewValidationError("council", id, "roles", fmt.Errorf("duplicate role '%s'", roleName))
			}
			seen[roleName] = true
		}

		if err := v.validateOptions("council", id, c.Options, c.Roles); err != nil {
			return err
		}

		// A chairman is required unless the preset explicitly limits output
		// to perspectives only
		mode := OutputModeBoth
		if c.Options != nil && c.Options.OutputMode != "" {
			mode = c.Options.OutputMode
		}
		if mode.WantsSynthesis() && c.Chairman == "" {
			return NewValidationError("council", id, "chairman", fmt.Errorf("chairman required when output mode includes synthesis"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateOptions(component, id string, opts *OptionsConfig, roles []string) error {
	if opts == nil {
		return nil
	}

	if opts.OutputMode != "" && !opts.OutputMode.IsValid() {
		return NewValidationError(component, id, "options.output_mode", fmt.Errorf("invalid output mode: %s", opts.OutputMode))
	}

	if opts.Aggregation != "" && !opts.Aggregation.IsValid() {
		return NewValidationError(component, id, "options.aggregation", fmt.Errorf("invalid aggregation method: %s", opts.Aggregation))
	}

	// Reviewers must reference seated roles (only checkable with a role list)
	if roles != nil {
		seated := make(map[string]bool, len(roles))
		for _, r := range roles {
			seated[r] = true
		}
		for _, reviewer := range opts.Reviewers {
			if !seated[reviewer] {
				return NewValidationError(component, id, "options.reviewers", fmt.Errorf("reviewer '%s' is not a council role", reviewer))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		// Validate provider type
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		switch provider.Type {
		case LLMProviderTypeOpenRouter:
			if provider.APIKeyEnv == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("api_key_env required for openrouter provider"))
			}
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}

		case LLMProviderTypeGRPC:
			if provider.Addr == "" {
				return NewValidationError("llm_provider", name, "addr", fmt.Errorf("addr required for grpc provider"))
			}
		}

		if provider.MaxConcurrent < 0 {
			return NewValidationError("llm_provider", name, "max_concurrent", fmt.Errorf("must not be negative"))
		}

		if provider.Timeout < 0 {
			return NewValidationError("llm_provider", name, "timeout", fmt.Errorf("must not be negative"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	if !v.cfg.CouncilRegistry.Has(d.Council) {
		return NewValidationError("defaults", "defaults", "council", fmt.Errorf("council '%s' not found", d.Council))
	}

	if !v.cfg.LLMProviderRegistry.Has(d.LLMProvider) {
		return NewValidationError("defaults", "defaults", "llm_provider", fmt.Errorf("LLM provider '%s' not found", d.LLMProvider))
	}

	if d.BootstrapRounds < 1 {
		return NewValidationError("defaults", "defaults", "bootstrap_rounds", fmt.Errorf("must be at least 1"))
	}

	if d.DeliberationDeadline <= 0 {
		return NewValidationError("defaults", "defaults", "deliberation_deadline", fmt.Errorf("must be positive"))
	}

	// Default options have no role list to check reviewers against;
	// reviewer membership is enforced per deliberation at creation time.
	if err := v.validateOptions("defaults", "defaults", d.Options, nil); err != nil {
		return err
	}

	return nil
}
