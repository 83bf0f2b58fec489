package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/council"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/models"
	"github.com/plenumhq/plenum/pkg/services"
	"github.com/stretchr/testify/require"
)

// testQueueConfig returns queue settings tuned for fast tests.
func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:                1,
		MaxConcurrentDeliberations: 5,
		PollInterval:               50 * time.Millisecond,
		PollIntervalJitter:         10 * time.Millisecond,
		DeliberationTimeout:        30 * time.Second,
		HeartbeatInterval:          100 * time.Millisecond,
		GracefulShutdownTimeout:    5 * time.Second,
		OrphanDetectionInterval:    time.Hour,
		OrphanThreshold:            time.Minute,
	}
}

// testAppConfig returns a minimal valid application config: two role
// presets, one council, an openrouter provider entry.
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

// newTestServices builds the service set the queue depends on.
func newTestServices(client *ent.Client) (*services.DeliberationService, *services.EventService, *services.ChatService) {
	cfg := testAppConfig()
	return services.NewDeliberationService(client, cfg),
		services.NewEventService(client),
		services.NewChatService(client)
}

// createPendingDeliberation creates a pending run from the pair preset.
func createPendingDeliberation(t *testing.T, delService *services.DeliberationService) *ent.Deliberation {
	t.Helper()
	del, err := delService.Create(context.Background(), models.CreateDeliberationRequest{
		Task:    "Should we shard the primary database?",
		Council: "pair",
		Author:  "tester@example.com",
	})
	require.NoError(t, err)
	return del
}

// claimDeliberation claims the next pending run for the given pod.
func claimDeliberation(t *testing.T, delService *services.DeliberationService, podID string) *ent.Deliberation {
	t.Helper()
	del, err := delService.ClaimNextPending(context.Background(), podID)
	require.NoError(t, err)
	require.NotNil(t, del)
	return del
}

// stubProvider answers every completion from a script function. Requests are
// recorded, safely under concurrent calls.
type stubProvider struct {
	mu     sync.Mutex
	calls  []llm.CompletionRequest
	script func(req llm.CompletionRequest) (*llm.Completion, error)
}

func (p *stubProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.calls = append(p.calls, req)
	p.mu.Unlock()

	if p.script != nil {
		return p.script(req)
	}
	return &llm.Completion{Text: "answer from " + req.Model, TokensUsed: 7}, nil
}

func (p *stubProvider) Close() error { return nil }

func (p *stubProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.calls)
}

// councilScript answers chairman calls with a synthesis and everything else
// with role answers that double as valid tie verdicts, so both generation
// and judge calls parse.
func councilScript(req llm.CompletionRequest) (*llm.Completion, error) {
	if req.Model == "test/chairman" {
		return &llm.Completion{Text: "The council concludes: shard later.", TokensUsed: 20}, nil
	}
	return &llm.Completion{Text: "answer from " + req.Model + "\n[[A = B]]", TokensUsed: 10}, nil
}

// stubExecutor implements DeliberationExecutor with a pluggable function.
type stubExecutor struct {
	fn func(ctx context.Context, del *ent.Deliberation) *ExecutionResult
}

func (s *stubExecutor) Execute(ctx context.Context, del *ent.Deliberation) *ExecutionResult {
	if s.fn == nil {
		return nil
	}
	return s.fn(ctx, del)
}

// fakeRegistry records deliberation registration for worker tests.
type fakeRegistry struct {
	mu         sync.Mutex
	registered []string
}

func (r *fakeRegistry) RegisterDeliberation(id string, _ context.CancelFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered = append(r.registered, id)
}

func (r *fakeRegistry) UnregisterDeliberation(string) {}

var _ council.Observer = (*eventObserver)(nil)
