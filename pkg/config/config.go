package config

// Config is the umbrella configuration object that encapsulates
// all registries, defaults, and configuration state.
// This is the primary object returned by Initialize() and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// System-wide defaults
	Defaults *Defaults

	// Queue and worker pool configuration
	Queue *QueueConfig

	// Slack notification configuration
	Slack *SlackConfig

	// Data retention configuration
	Retention *RetentionConfig

	// Dashboard base URL used in outbound links
	DashboardURL string

	// Additional allowed WebSocket origin patterns
	AllowedWSOrigins []string

	// Component registries
	RoleRegistry        *RoleRegistry
	CouncilRegistry     *CouncilRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Initialize is defined in loader.go

// Stats contains statistics about loaded configuration
type Stats struct {
	Roles        int
	Councils     int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.RoleRegistry != nil {
		s.Roles = c.RoleRegistry.Len()
	}
	if c.CouncilRegistry != nil {
		s.Councils = c.CouncilRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetRole retrieves a role configuration by name.
// This is a convenience method that wraps RoleRegistry.Get().
func (c *Config) GetRole(name string) (*RoleConfig, error) {
	return c.RoleRegistry.Get(name)
}

// GetCouncil retrieves a council configuration by ID.
// This is a convenience method that wraps CouncilRegistry.Get().
func (c *Config) GetCouncil(id string) (*CouncilConfig, error) {
	return c.CouncilRegistry.Get(id)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// This is a convenience method that wraps LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// DefaultCouncil retrieves the configured default council preset.
func (c *Config) DefaultCouncil() (*CouncilConfig, error) {
	return c.CouncilRegistry.Get(c.Defaults.Council)
}
