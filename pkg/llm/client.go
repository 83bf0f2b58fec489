// Package llm provides the provider adapters used to call LLM gateways.
//
// The deliberation engine talks to exactly one surface, Provider, and never
// learns a gateway's wire format. Two adapters are included: an OpenRouter
// HTTP client and a gRPC client for a local model sidecar. Both are safe for
// concurrent use; Limit wraps either with an in-flight cap.
package llm

import "context"

// Sampling carries optional decoding parameters. Nil fields are omitted from
// provider requests so gateway defaults apply.
type Sampling struct {
	Temperature      *float64 `json:"temperature,omitempty" yaml:"temperature,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty" yaml:"max_tokens,omitempty"`
	TopP             *float64 `json:"top_p,omitempty" yaml:"top_p,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty" yaml:"presence_penalty,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty" yaml:"frequency_penalty,omitempty"`
}

// CompletionRequest is one chat completion call: a model id, an optional
// system message, a user message, and sampling parameters.
type CompletionRequest struct {
	Model    string
	System   string
	User     string
	Sampling Sampling
}

// Completion is the provider's reply. TokensUsed is zero when the gateway
// does not report usage.
type Completion struct {
	Text       string
	TokensUsed int
	LatencyMS  int64
}

// Provider is the only surface the engine depends on. Complete must honor
// context cancellation; Close releases pooled connections.
type Provider interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Close() error
}

// HealthChecker is implemented by providers that can probe their gateway
// without spending tokens. Probe is used at startup as a warn-only check.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Probe health-checks p when it supports it. Returns (false, nil) for
// providers with no cheap probe.
func Probe(ctx context.Context, p Provider) (bool, error) {
	hc, ok := p.(HealthChecker)
	if !ok {
		return false, nil
	}
	return true, hc.Health(ctx)
}
