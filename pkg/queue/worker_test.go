package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	testdb "github.com/plenumhq/plenum/test/database"
)

func TestWorker_PollAndProcess_NoWork(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)
	worker := NewWorker("w1", "pod-a", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil, &fakeRegistry{})

	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrNoDeliberationsAvailable)
}

func TestWorker_PollAndProcess_AtCapacity(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)

	// Another pod already holds the only allowed slot.
	createPendingDeliberation(t, delService)
	claimDeliberation(t, delService, "pod-other")

	cfg := testQueueConfig()
	cfg.MaxConcurrentDeliberations = 1
	worker := NewWorker("w1", "pod-a", client.Client, cfg, &stubExecutor{},
		delService, eventService, nil, nil, &fakeRegistry{})

	err := worker.pollAndProcess(context.Background())
	assert.ErrorIs(t, err, ErrAtCapacity)
}

func TestWorker_PollAndProcess_Completes(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)
	ctx := context.Background()

	created := createPendingDeliberation(t, delService)

	// The executor owns terminal persistence.
	executor := &stubExecutor{fn: func(ctx context.Context, del *ent.Deliberation) *ExecutionResult {
		err := delService.UpdateStatus(ctx, del.ID, deliberation.StatusCompleted, "")
		require.NoError(t, err)
		return &ExecutionResult{Status: deliberation.StatusCompleted, Synthesis: "done"}
	}}

	registry := &fakeRegistry{}
	worker := NewWorker("w1", "pod-a", client.Client, testQueueConfig(), executor,
		delService, eventService, nil, nil, registry)

	err := worker.pollAndProcess(ctx)
	require.NoError(t, err)

	stored, err := delService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCompleted, stored.Status)
	require.NotNil(t, stored.PodID)
	assert.Equal(t, "pod-a", *stored.PodID)
	require.NotNil(t, stored.StartedAt)

	health := worker.Health()
	assert.Equal(t, 1, health.DeliberationsProcessed)
	assert.Equal(t, string(WorkerStatusIdle), health.Status)
	assert.Empty(t, health.CurrentDeliberationID)

	assert.Contains(t, registry.registered, created.ID)
}

func TestWorker_NilResultGuard(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)
	ctx := context.Background()

	created := createPendingDeliberation(t, delService)

	worker := NewWorker("w1", "pod-a", client.Client, testQueueConfig(),
		&stubExecutor{}, // returns nil
		delService, eventService, nil, nil, &fakeRegistry{})

	err := worker.pollAndProcess(ctx)
	require.NoError(t, err)

	// The worker itself wrote the terminal status.
	stored, err := delService.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "nil result")
}

func TestWorker_PollInterval_Jitter(t *testing.T) {
	cfg := testQueueConfig()
	worker := NewWorker("w1", "pod-a", nil, cfg, &stubExecutor{}, nil, nil, nil, nil, nil)

	lo := cfg.PollInterval - cfg.PollIntervalJitter
	hi := cfg.PollInterval + cfg.PollIntervalJitter
	for i := 0; i < 50; i++ {
		d := worker.pollInterval()
		assert.GreaterOrEqual(t, d, lo)
		assert.LessOrEqual(t, d, hi)
	}
}

func TestWorker_PollInterval_NoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	worker := NewWorker("w1", "pod-a", nil, cfg, &stubExecutor{}, nil, nil, nil, nil, nil)
	assert.Equal(t, cfg.PollInterval, worker.pollInterval())
}
