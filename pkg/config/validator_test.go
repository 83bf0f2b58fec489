package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validTestConfig builds a minimal configuration that passes validation.
// Tests mutate one aspect at a time.
func validTestConfig() *Config {
	temp := 0.7
	return &Config{
		Defaults: &Defaults{
			Council:              "panel",
			LLMProvider:          "gateway",
			BootstrapRounds:      1000,
			BootstrapSeed:        1,
			DeliberationDeadline: 10 * time.Minute,
		},
		RoleRegistry: NewRoleRegistry(map[string]*RoleConfig{
			"optimist": {Model: "m1", Sampling: SamplingConfig{Temperature: &temp}},
			"cynic":    {Model: "m2", Weight: 1.5},
		}),
		CouncilRegistry: NewCouncilRegistry(map[string]*CouncilConfig{
			"panel": {
				Roles:    []string{"optimist", "cynic"},
				Chairman: "m1",
			},
		}),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"gateway": {Type: LLMProviderTypeGRPC, Addr: "localhost:50051"},
		}),
	}
}

func TestValidateAll_Valid(t *testing.T) {
	cfg := validTestConfig()
	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateRoles(t *testing.T) {
	badTemp := 3.5
	badTopP := 1.5
	zeroTokens := 0

	tests := []struct {
		name    string
		role    *RoleConfig
		wantErr string
	}{
		{
			name:    "missing model",
			role:    &RoleConfig{SystemPrompt: "p"},
			wantErr: "model",
		},
		{
			name:    "negative weight",
			role:    &RoleConfig{Model: "m", Weight: -1},
			wantErr: "weight",
		},
		{
			name:    "temperature out of range",
			role:    &RoleConfig{Model: "m", Sampling: SamplingConfig{Temperature: &badTemp}},
			wantErr: "temperature",
		},
		{
			name:    "top_p out of range",
			role:    &RoleConfig{Model: "m", Sampling: SamplingConfig{TopP: &badTopP}},
			wantErr: "top_p",
		},
		{
			name:    "max_tokens below one",
			role:    &RoleConfig{Model: "m", Sampling: SamplingConfig{MaxTokens: &zeroTokens}},
			wantErr: "max_tokens",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.RoleRegistry = NewRoleRegistry(map[string]*RoleConfig{
				"optimist": {Model: "m1"},
				"cynic":    {Model: "m2"},
				"broken":   tt.role,
			})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "role", verr.Component)
			assert.Equal(t, "broken", verr.ID)
		})
	}
}

func TestValidateCouncils(t *testing.T) {
	tests := []struct {
		name    string
		council *CouncilConfig
		wantErr string
	}{
		{
			name:    "too few roles",
			council: &CouncilConfig{Roles: []string{"optimist"}, Chairman: "m"},
			wantErr: "at least two roles",
		},
		{
			name:    "unknown role",
			council: &CouncilConfig{Roles: []string{"optimist", "ghost"}, Chairman: "m"},
			wantErr: "role 'ghost' not found",
		},
		{
			name:    "duplicate role",
			council: &CouncilConfig{Roles: []string{"optimist", "optimist"}, Chairman: "m"},
			wantErr: "duplicate role",
		},
		{
			name:    "missing chairman with synthesis output",
			council: &CouncilConfig{Roles: []string{"optimist", "cynic"}},
			wantErr: "chairman required",
		},
		{
			name: "invalid output mode",
			council: &CouncilConfig{
				Roles:    []string{"optimist", "cynic"},
				Chairman: "m",
				Options:  &OptionsConfig{OutputMode: "sideways"},
			},
			wantErr: "invalid output mode",
		},
		{
			name: "invalid aggregation",
			council: &CouncilConfig{
				Roles:    []string{"optimist", "cynic"},
				Chairman: "m",
				Options:  &OptionsConfig{Aggregation: "alphabetical"},
			},
			wantErr: "invalid aggregation",
		},
		{
			name: "reviewer not seated",
			council: &CouncilConfig{
				Roles:    []string{"optimist", "cynic"},
				Chairman: "m",
				Options:  &OptionsConfig{Reviewers: []string{"ghost"}},
			},
			wantErr: "reviewer 'ghost'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			cfg.CouncilRegistry = NewCouncilRegistry(map[string]*CouncilConfig{
				"panel":  {Roles: []string{"optimist", "cynic"}, Chairman: "m1"},
				"broken": tt.council,
			})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCouncils_PerspectivesOnlyNeedsNoChairman(t *testing.T) {
	cfg := validTestConfig()
	cfg.CouncilRegistry = NewCouncilRegistry(map[string]*CouncilConfig{
		"panel": {
			Roles:   []string{"optimist", "cynic"},
			Options: &OptionsConfig{OutputMode: OutputModePerspectives},
		},
	})

	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name     string
		provider *LLMProviderConfig
		env      map[string]string
		wantErr  string
	}{
		{
			name:     "invalid type",
			provider: &LLMProviderConfig{Type: "carrier-pigeon"},
			wantErr:  "invalid provider type",
		},
		{
			name:     "openrouter missing api_key_env",
			provider: &LLMProviderConfig{Type: LLMProviderTypeOpenRouter},
			wantErr:  "api_key_env required",
		},
		{
			name:     "openrouter env var not set",
			provider: &LLMProviderConfig{Type: LLMProviderTypeOpenRouter, APIKeyEnv: "PLENUM_TEST_UNSET_KEY"},
			wantErr:  "PLENUM_TEST_UNSET_KEY is not set",
		},
		{
			name:     "grpc missing addr",
			provider: &LLMProviderConfig{Type: LLMProviderTypeGRPC},
			wantErr:  "addr required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg := validTestConfig()
			cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
				"gateway": {Type: LLMProviderTypeGRPC, Addr: "localhost:50051"},
				"broken":  tt.provider,
			})

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLLMProviders_OpenRouterWithKeySet(t *testing.T) {
	t.Setenv("PLENUM_TEST_SET_KEY", "sk-test")

	cfg := validTestConfig()
	cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
		"gateway": {Type: LLMProviderTypeGRPC, Addr: "localhost:50051"},
		"router":  {Type: LLMProviderTypeOpenRouter, APIKeyEnv: "PLENUM_TEST_SET_KEY"},
	})

	assert.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateDefaults(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Defaults)
		wantErr string
	}{
		{
			name:    "unknown council",
			mutate:  func(d *Defaults) { d.Council = "ghost" },
			wantErr: "council 'ghost' not found",
		},
		{
			name:    "unknown provider",
			mutate:  func(d *Defaults) { d.LLMProvider = "ghost" },
			wantErr: "LLM provider 'ghost' not found",
		},
		{
			name:    "zero bootstrap rounds",
			mutate:  func(d *Defaults) { d.BootstrapRounds = 0 },
			wantErr: "bootstrap_rounds",
		},
		{
			name:    "zero deadline",
			mutate:  func(d *Defaults) { d.DeliberationDeadline = 0 },
			wantErr: "deliberation_deadline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig()
			tt.mutate(cfg.Defaults)

			err := NewValidator(cfg).ValidateAll()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
