package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/config"
	testdb "github.com/plenumhq/plenum/test/database"
)

func TestRealDeliberationExecutor_Execute(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, _ := newTestServices(client.Client)
	provider := &stubProvider{script: councilScript}
	exec := NewRealDeliberationExecutor(testAppConfig(), provider, delService, nil, NewAPIKeyStash())
	ctx := context.Background()

	createPendingDeliberation(t, delService)
	del := claimDeliberation(t, delService, "pod-exec-test")

	result := exec.Execute(ctx, del)
	require.NotNil(t, result)
	assert.Equal(t, deliberation.StatusCompleted, result.Status)
	assert.Equal(t, "The council concludes: shard later.", result.Synthesis)
	assert.NoError(t, result.Error)

	// The executor persisted the full output in one transaction.
	stored, err := delService.GetDetail(ctx, del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCompleted, stored.Status)
	require.NotNil(t, stored.Synthesis)
	assert.Equal(t, "The council concludes: shard later.", *stored.Synthesis)
	require.NotNil(t, stored.CompletedAt)

	require.Len(t, stored.Edges.Answers, 2)
	assert.Equal(t, "analyst", stored.Edges.Answers[0].Role)
	assert.True(t, stored.Edges.Answers[0].Success)

	// Pairwise ties from both judges, all three aggregation methods.
	assert.Len(t, stored.Edges.Verdicts, 2)
	assert.Len(t, stored.Edges.ScoreSets, 3)
}

func TestRealDeliberationExecutor_InvalidRolesSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, _ := newTestServices(client.Client)
	exec := NewRealDeliberationExecutor(testAppConfig(), &stubProvider{}, delService, nil, nil)
	ctx := context.Background()

	// A snapshot no role list can be rebuilt from.
	del, err := client.Client.Deliberation.Create().
		SetID("del_bad_snapshot").
		SetTask("corrupt").
		SetStatus(deliberation.StatusInProgress).
		SetRoles([]map[string]interface{}{{"name": map[string]interface{}{"nested": true}}}).
		SetOptions(map[string]interface{}{"output_mode": "both"}).
		Save(ctx)
	require.NoError(t, err)

	result := exec.Execute(ctx, del)
	require.NotNil(t, result)
	assert.Equal(t, deliberation.StatusFailed, result.Status)
	assert.Error(t, result.Error)

	stored, err := delService.Get(ctx, del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusFailed, stored.Status)
	require.NotNil(t, stored.ErrorMessage)
	assert.Contains(t, *stored.ErrorMessage, "invalid roles snapshot")
}

func TestRealDeliberationExecutor_Cancelled(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, _ := newTestServices(client.Client)
	exec := NewRealDeliberationExecutor(testAppConfig(), &stubProvider{script: councilScript}, delService, nil, nil)

	createPendingDeliberation(t, delService)
	del := claimDeliberation(t, delService, "pod-cancel-test")

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // cancelled before the first provider call

	result := exec.Execute(ctx, del)
	require.NotNil(t, result)
	assert.Equal(t, deliberation.StatusCancelled, result.Status)
	assert.Error(t, result.Error)

	stored, err := delService.Get(context.Background(), del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCancelled, stored.Status)
}

func TestRealDeliberationExecutor_LateCancelWins(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, _ := newTestServices(client.Client)
	exec := NewRealDeliberationExecutor(testAppConfig(), &stubProvider{script: councilScript}, delService, nil, nil)
	ctx := context.Background()

	createPendingDeliberation(t, delService)
	del := claimDeliberation(t, delService, "pod-late-cancel")

	// User cancels while the run is in flight; the row moves to cancelling
	// but the context never fires before the engine finishes.
	_, err := delService.Cancel(ctx, del.ID)
	require.NoError(t, err)

	result := exec.Execute(ctx, del)
	require.NotNil(t, result)
	assert.Equal(t, deliberation.StatusCancelled, result.Status)

	// The output is persisted even though the terminal status is cancelled.
	stored, err := delService.GetDetail(ctx, del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCancelled, stored.Status)
	assert.Len(t, stored.Edges.Answers, 2)
}

func TestRealDeliberationExecutor_RemovesStashedKey(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, _ := newTestServices(client.Client)
	stash := NewAPIKeyStash()

	// A provider type without key-override support: the stashed key is
	// ignored for execution but must still be dropped afterwards.
	cfg := testAppConfig()
	cfg.LLMProviderRegistry = config.NewLLMProviderRegistry(map[string]*config.LLMProviderConfig{
		"openrouter": {Type: config.LLMProviderTypeGRPC},
	})
	exec := NewRealDeliberationExecutor(cfg, &stubProvider{script: councilScript}, delService, nil, stash)
	ctx := context.Background()

	createPendingDeliberation(t, delService)
	del := claimDeliberation(t, delService, "pod-stash-test")
	stash.Put(del.ID, "sk-caller")

	result := exec.Execute(ctx, del)
	require.NotNil(t, result)
	assert.Equal(t, deliberation.StatusCompleted, result.Status)

	_, ok := stash.Get(del.ID)
	assert.False(t, ok, "key should be dropped at terminal state")
}
