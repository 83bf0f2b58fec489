package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *OpenRouter) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := NewOpenRouter(OpenRouterConfig{
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Timeout: 5 * time.Second,
	})
	t.Cleanup(func() { client.Close() })
	return srv, client
}

func TestOpenRouterComplete(t *testing.T) {
	var gotBody map[string]any
	var gotAuth string
	_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "the answer"}},
			},
			"usage": map[string]any{"total_tokens": 42},
		})
	})

	temp := 0.3
	maxTokens := 500
	completion, err := client.Complete(context.Background(), CompletionRequest{
		Model:  "anthropic/claude-sonnet-4",
		System: "be brief",
		User:   "what is truth",
		Sampling: Sampling{
			Temperature: &temp,
			MaxTokens:   &maxTokens,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "the answer", completion.Text)
	assert.Equal(t, 42, completion.TokensUsed)
	assert.GreaterOrEqual(t, completion.LatencyMS, int64(0))

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "anthropic/claude-sonnet-4", gotBody["model"])
	assert.Equal(t, 0.3, gotBody["temperature"])
	assert.Equal(t, float64(500), gotBody["max_tokens"])
	// Nil sampling fields stay out of the request.
	assert.NotContains(t, gotBody, "top_p")

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "be brief", first["content"])
}

func TestOpenRouterComplete_NoSystemMessage(t *testing.T) {
	var gotBody map[string]any
	_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	})

	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
	require.NoError(t, err)

	messages := gotBody["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "user", messages[0].(map[string]any)["role"])
}

func TestOpenRouterComplete_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		wantTransient bool
	}{
		{"server error is transient", http.StatusInternalServerError, true},
		{"rate limit is transient", http.StatusTooManyRequests, true},
		{"bad request is permanent", http.StatusBadRequest, false},
		{"unauthorized is permanent", http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"message": "nope"},
				})
			})

			_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
			require.Error(t, err)

			var pe *ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.status, pe.StatusCode)
			assert.Equal(t, "nope", pe.Message)
			assert.Equal(t, tt.wantTransient, pe.Transient)
			assert.Equal(t, tt.wantTransient, IsTransient(err))
		})
	}
}

func TestOpenRouterComplete_ErrorInsideOKBody(t *testing.T) {
	_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"code": 429, "message": "slow down"},
		})
	})

	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
	var pe *ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 429, pe.StatusCode)
	assert.True(t, pe.Transient)
}

func TestOpenRouterComplete_MissingAPIKey(t *testing.T) {
	client := NewOpenRouter(OpenRouterConfig{BaseURL: "http://unused"})
	_, err := client.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestOpenRouterComplete_Cancellation(t *testing.T) {
	_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.Complete(ctx, CompletionRequest{Model: "m", User: "q"})
		done <- err
	}()
	cancel()

	select {
	case err := <-done:
		require.Error(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Complete did not honor cancellation")
	}
}

func TestOpenRouterWithAPIKey(t *testing.T) {
	var gotAuth string
	_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{{"message": map[string]any{"content": "ok"}}},
		})
	})

	override := client.WithAPIKey("caller-key")
	_, err := override.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer caller-key", gotAuth)
}

func TestOpenRouterHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/models", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		})
		assert.NoError(t, client.Health(context.Background()))
	})

	t.Run("unhealthy", func(t *testing.T) {
		_, client := newTestGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		assert.Error(t, client.Health(context.Background()))
	})
}
