package config

// mergeRoles merges built-in and user-defined role configurations.
// User-defined roles override built-in roles with the same name.
func mergeRoles(builtinRoles map[string]RoleConfig, userRoles map[string]RoleConfig) map[string]*RoleConfig {
	result := make(map[string]*RoleConfig)

	// First, add built-in roles
	for name, role := range builtinRoles {
		roleCopy := role
		result[name] = &roleCopy
	}

	// Then, override with user-defined roles (or add new ones)
	for name, userRole := range userRoles {
		roleCopy := userRole
		result[name] = &roleCopy
	}

	return result
}

// mergeCouncils merges built-in and user-defined council configurations.
// User-defined councils override built-in councils with the same ID.
func mergeCouncils(builtinCouncils map[string]CouncilConfig, userCouncils map[string]CouncilConfig) map[string]*CouncilConfig {
	result := make(map[string]*CouncilConfig)

	// First, add built-in councils
	for id, council := range builtinCouncils {
		councilCopy := council
		result[id] = &councilCopy
	}

	// Then, override with user-defined councils (or add new ones)
	for id, userCouncil := range userCouncils {
		councilCopy := userCouncil
		result[id] = &councilCopy
	}

	return result
}

// mergeLLMProviders merges built-in and user-defined LLM provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeLLMProviders(builtinProviders map[string]LLMProviderConfig, userProviders map[string]LLMProviderConfig) map[string]*LLMProviderConfig {
	result := make(map[string]*LLMProviderConfig)

	// First, add built-in providers
	for name, provider := range builtinProviders {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range userProviders {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}
