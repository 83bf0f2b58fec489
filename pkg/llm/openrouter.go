package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/plenumhq/plenum/pkg/version"
)

// DefaultOpenRouterBaseURL is the public gateway endpoint.
const DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// DefaultRequestTimeout bounds one completion call end to end.
const DefaultRequestTimeout = 120 * time.Second

// OpenRouterConfig configures an OpenRouter client.
type OpenRouterConfig struct {
	// BaseURL defaults to DefaultOpenRouterBaseURL.
	BaseURL string

	// APIKey authenticates every request.
	APIKey string

	// Timeout is the per-request deadline. Defaults to
	// DefaultRequestTimeout.
	Timeout time.Duration

	// Referer and Title are the attribution headers the gateway asks
	// clients to send. Both are optional.
	Referer string
	Title   string
}

// OpenRouter speaks the gateway's chat-completions wire format. It is the
// only type in the engine that knows that format. Safe for concurrent use.
type OpenRouter struct {
	cfg        OpenRouterConfig
	httpClient *http.Client
}

// NewOpenRouter creates a client. The API key may be empty at construction;
// calls will then fail with ErrMissingAPIKey until WithAPIKey supplies one.
func NewOpenRouter(cfg OpenRouterConfig) *OpenRouter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenRouterBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultRequestTimeout
	}
	return &OpenRouter{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConnsPerHost: 32,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// WithAPIKey returns a client identical to o but authenticating with key,
// sharing the underlying connection pool. Used for per-deliberation key
// overrides; the original client is unchanged.
func (o *OpenRouter) WithAPIKey(key string) *OpenRouter {
	clone := *o
	clone.cfg.APIKey = key
	return &clone
}

// chatMessage, chatRequest, and chatResponse mirror the gateway's
// chat-completions schema. Sampling fields are embedded so nil pointers are
// omitted and gateway defaults apply.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Sampling
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Complete issues one chat-completions POST and parses the reply.
func (o *OpenRouter) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if o.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w for model %s", ErrMissingAPIKey, req.Model)
	}

	ctx, cancel := context.WithTimeout(ctx, o.cfg.Timeout)
	defer cancel()

	messages := make([]chatMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.User})

	body, err := json.Marshal(chatRequest{
		Model:    req.Model,
		Messages: messages,
		Sampling: req.Sampling,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode completion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build completion request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", version.Full())
	if o.cfg.Referer != "" {
		httpReq.Header.Set("HTTP-Referer", o.cfg.Referer)
	}
	if o.cfg.Title != "" {
		httpReq.Header.Set("X-Title", o.cfg.Title)
	}

	start := time.Now()
	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		// Transport-level failures (timeouts, resets) are transient.
		return nil, &ProviderError{Model: req.Model, Message: err.Error(), Transient: true}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return nil, &ProviderError{Model: req.Model, Message: fmt.Sprintf("failed to read response: %v", err), Transient: true}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{
			Model:      req.Model,
			StatusCode: resp.StatusCode,
			Message:    gatewayMessage(raw),
			Transient:  transientStatus(resp.StatusCode),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ProviderError{Model: req.Model, Message: fmt.Sprintf("malformed gateway response: %v", err), Transient: true}
	}
	// Some gateways report per-request failures inside a 200 body.
	if parsed.Error != nil {
		return nil, &ProviderError{
			Model:      req.Model,
			StatusCode: parsed.Error.Code,
			Message:    parsed.Error.Message,
			Transient:  transientStatus(parsed.Error.Code),
		}
	}
	if len(parsed.Choices) == 0 {
		return nil, &ProviderError{Model: req.Model, Message: "gateway returned no choices", Transient: true}
	}

	return &Completion{
		Text:       parsed.Choices[0].Message.Content,
		TokensUsed: parsed.Usage.TotalTokens,
		LatencyMS:  time.Since(start).Milliseconds(),
	}, nil
}

// Health probes the gateway's model catalog endpoint.
func (o *OpenRouter) Health(ctx context.Context) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, o.cfg.BaseURL+"/models", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	if o.cfg.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.cfg.APIKey)
	}

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("gateway unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway health probe returned %d", resp.StatusCode)
	}
	return nil
}

// Close releases pooled connections.
func (o *OpenRouter) Close() error {
	o.httpClient.CloseIdleConnections()
	return nil
}

// gatewayMessage extracts a useful error message from an error body,
// falling back to the raw text.
func gatewayMessage(raw []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error.Message != "" {
		return parsed.Error.Message
	}
	msg := string(raw)
	if len(msg) > 512 {
		msg = msg[:512]
	}
	return msg
}
