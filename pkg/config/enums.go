package config

// LLMProviderType defines supported LLM provider transports
type LLMProviderType string

const (
	// LLMProviderTypeOpenRouter is the OpenRouter HTTP gateway
	LLMProviderTypeOpenRouter LLMProviderType = "openrouter"
	// LLMProviderTypeGRPC is a local model-gateway sidecar over gRPC
	LLMProviderTypeGRPC LLMProviderType = "grpc"
)

// IsValid checks if the LLM provider type is valid
func (t LLMProviderType) IsValid() bool {
	return t == LLMProviderTypeOpenRouter || t == LLMProviderTypeGRPC
}

// OutputMode defines what a deliberation returns: the individual role
// answers, a chairman synthesis, or both.
type OutputMode string

const (
	OutputModePerspectives OutputMode = "perspectives"
	OutputModeSynthesis    OutputMode = "synthesis"
	OutputModeBoth         OutputMode = "both"
)

// IsValid checks if the output mode is valid
func (m OutputMode) IsValid() bool {
	return m == OutputModePerspectives || m == OutputModeSynthesis || m == OutputModeBoth
}

// WantsSynthesis reports whether the mode includes a chairman synthesis.
func (m OutputMode) WantsSynthesis() bool {
	return m == OutputModeSynthesis || m == OutputModeBoth
}

// AggregationMethod defines the primary ranking method echoed in results
type AggregationMethod string

const (
	// AggregationBorda is positional Borda count scoring
	AggregationBorda AggregationMethod = "borda"
	// AggregationBradleyTerry fits Bradley-Terry strengths by MM iteration
	AggregationBradleyTerry AggregationMethod = "bradley_terry"
	// AggregationELO replays verdicts as sequential ELO updates
	AggregationELO AggregationMethod = "elo"
)

// IsValid checks if the aggregation method is valid
func (m AggregationMethod) IsValid() bool {
	return m == AggregationBorda || m == AggregationBradleyTerry || m == AggregationELO
}
