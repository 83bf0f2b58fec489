package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/database"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/services"
	testdb "github.com/plenumhq/plenum/test/database"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testAppConfig returns a minimal valid application config with two role
// presets and one council.
func testAppConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{
			Council:     "pair",
			LLMProvider: "openrouter",
		},
		RoleRegistry: config.NewRoleRegistry(map[string]*config.RoleConfig{
			"analyst": {Model: "test/model-a", SystemPrompt: "You are a careful analyst."},
			"skeptic": {Model: "test/model-b", SystemPrompt: "You challenge assumptions."},
		}),
		CouncilRegistry: config.NewCouncilRegistry(map[string]*config.CouncilConfig{
			"pair": {
				Roles:    []string{"analyst", "skeptic"},
				Chairman: "test/chairman",
			},
		}),
		LLMProviderRegistry: config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
			"openrouter": {Type: config.LLMProviderTypeOpenRouter},
		}),
	}
}

// testServer bundles the server under test with its backing services.
type testServer struct {
	server        *Server
	router        *gin.Engine
	client        *database.Client
	deliberations *services.DeliberationService
	chats         *services.ChatService
}

// newTestServer builds a server against a fresh test database.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := testAppConfig()

	deliberations := services.NewDeliberationService(client.Client, cfg)
	scores := services.NewScoreService(client.Client)
	chats := services.NewChatService(client.Client)

	server := NewServer(cfg, client, deliberations, scores, chats)
	return &testServer{
		server:        server,
		router:        server.Router(),
		client:        client,
		deliberations: deliberations,
		chats:         chats,
	}
}

// doJSON performs a request with an optional JSON body and returns the
// recorder.
func (ts *testServer) doJSON(t *testing.T, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals the recorded JSON body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// createDeliberation posts a preset-based create request and returns the id.
func (ts *testServer) createDeliberation(t *testing.T) string {
	t.Helper()
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations", map[string]interface{}{
		"task":    "Should we shard the primary database?",
		"council": "pair",
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateDeliberationResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.DeliberationID)
	return resp.DeliberationID
}

// scriptedProvider answers completions from a script function.
type scriptedProvider struct {
	mu     sync.Mutex
	script func(req llm.CompletionRequest) (*llm.Completion, error)
}

func (p *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.script != nil {
		return p.script(req)
	}
	return &llm.Completion{Text: "chairman reply", TokensUsed: 5}, nil
}

func (p *scriptedProvider) Close() error { return nil }

// blockUntil returns a script that holds every completion until release is
// closed.
func blockUntil(release chan struct{}) func(req llm.CompletionRequest) (*llm.Completion, error) {
	return func(llm.CompletionRequest) (*llm.Completion, error) {
		<-release
		return &llm.Completion{Text: "late reply"}, nil
	}
}
