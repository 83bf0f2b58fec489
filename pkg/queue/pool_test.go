package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	testdb "github.com/plenumhq/plenum/test/database"
)

func TestWorkerPool_ProcessesQueue(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)
	ctx := context.Background()

	created := createPendingDeliberation(t, delService)

	executor := &stubExecutor{fn: func(ctx context.Context, del *ent.Deliberation) *ExecutionResult {
		if err := delService.UpdateStatus(ctx, del.ID, deliberation.StatusCompleted, ""); err != nil {
			return &ExecutionResult{Status: deliberation.StatusFailed, Error: err}
		}
		return &ExecutionResult{Status: deliberation.StatusCompleted}
	}}

	pool := NewWorkerPool("pod-pool-test", client.Client, testQueueConfig(), executor,
		delService, eventService, nil, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		stored, err := delService.Get(ctx, created.ID)
		return err == nil && stored.Status == deliberation.StatusCompleted
	}, 5*time.Second, 50*time.Millisecond)
}

func TestWorkerPool_StartIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)

	pool := NewWorkerPool("pod-idem", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil)
	require.NoError(t, pool.Start(context.Background()))
	require.NoError(t, pool.Start(context.Background())) // no-op
	assert.Len(t, pool.workers, 1)
	pool.Stop()
}

func TestWorkerPool_CancelDeliberation(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)

	pool := NewWorkerPool("pod-cancel", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	pool.RegisterDeliberation("del_1", cancel)

	assert.False(t, pool.CancelDeliberation("del_unknown"))
	assert.True(t, pool.CancelDeliberation("del_1"))
	assert.ErrorIs(t, ctx.Err(), context.Canceled)

	pool.UnregisterDeliberation("del_1")
	assert.False(t, pool.CancelDeliberation("del_1"))
}

func TestWorkerPool_Health(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)

	createPendingDeliberation(t, delService)

	pool := NewWorkerPool("pod-health", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil)

	// Before Start: reachable DB, visible queue depth, but no workers.
	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.False(t, health.IsHealthy)
	assert.Equal(t, 0, health.TotalWorkers)
	assert.Equal(t, 1, health.QueueDepth)
	assert.Equal(t, "pod-health", health.PodID)
}

func TestWorkerPool_OrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)
	ctx := context.Background()

	createPendingDeliberation(t, delService)
	del := claimDeliberation(t, delService, "pod-dead")

	// Age the heartbeat past the orphan threshold.
	stale := time.Now().Add(-10 * time.Minute)
	_, err := client.Client.Deliberation.UpdateOneID(del.ID).
		SetLastInteractionAt(stale).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-scanner", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	stored, err := delService.Get(ctx, del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusTimedOut, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "Orphaned: no heartbeat from pod pod-dead")

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}

func TestWorkerPool_OrphanRecovery_CancellingBecomesCancelled(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)
	ctx := context.Background()

	createPendingDeliberation(t, delService)
	del := claimDeliberation(t, delService, "pod-dead")

	// The user asked for cancellation before the pod died.
	_, err := delService.Cancel(ctx, del.ID)
	require.NoError(t, err)
	stale := time.Now().Add(-10 * time.Minute)
	_, err = client.Client.Deliberation.UpdateOneID(del.ID).
		SetLastInteractionAt(stale).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("pod-scanner", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	stored, err := delService.Get(ctx, del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCancelled, stored.Status)
}

func TestWorkerPool_OrphanScan_NoOrphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, eventService, _ := newTestServices(client.Client)

	pool := NewWorkerPool("pod-scanner", client.Client, testQueueConfig(), &stubExecutor{},
		delService, eventService, nil, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(context.Background()))

	health := pool.Health()
	assert.Equal(t, 0, health.OrphansRecovered)
	assert.False(t, health.LastOrphanScan.IsZero())
}
