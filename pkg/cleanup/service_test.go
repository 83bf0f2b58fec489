package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/models"
	"github.com/plenumhq/plenum/pkg/services"
	testdb "github.com/plenumhq/plenum/test/database"
)

func testRetentionConfig() *config.RetentionConfig {
	return &config.RetentionConfig{
		DeliberationRetentionDays: 90,
		EventTTL:                  time.Hour,
		CleanupInterval:           time.Hour,
	}
}

func setupServices(t *testing.T) (*ent.Client, *services.DeliberationService, *services.EventService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	cfg := &config.Config{
		Defaults: &config.Defaults{Council: "pair"},
		RoleRegistry: config.NewRoleRegistry(map[string]*config.RoleConfig{
			"analyst": {Model: "test/model-a"},
			"skeptic": {Model: "test/model-b"},
		}),
		CouncilRegistry: config.NewCouncilRegistry(map[string]*config.CouncilConfig{
			"pair": {Roles: []string{"analyst", "skeptic"}, Chairman: "test/chairman"},
		}),
	}
	return client.Client, services.NewDeliberationService(client.Client, cfg), services.NewEventService(client.Client)
}

func createCompletedDeliberation(t *testing.T, client *ent.Client, delService *services.DeliberationService, completedAt time.Time) string {
	t.Helper()
	ctx := context.Background()

	del, err := delService.Create(ctx, models.CreateDeliberationRequest{
		Task:    "retention check",
		Council: "pair",
	})
	require.NoError(t, err)

	err = client.Deliberation.UpdateOneID(del.ID).
		SetStatus(deliberation.StatusCompleted).
		SetCompletedAt(completedAt).
		Exec(ctx)
	require.NoError(t, err)
	return del.ID
}

func TestService_SoftDeletesOldDeliberations(t *testing.T) {
	client, delService, eventService := setupServices(t)
	ctx := context.Background()

	oldID := createCompletedDeliberation(t, client, delService, time.Now().Add(-120*24*time.Hour))
	freshID := createCompletedDeliberation(t, client, delService, time.Now().Add(-time.Hour))

	svc := NewService(testRetentionConfig(), delService, eventService)
	svc.runAll(ctx)

	old, err := client.Deliberation.Get(ctx, oldID)
	require.NoError(t, err)
	assert.NotNil(t, old.DeletedAt)

	fresh, err := client.Deliberation.Get(ctx, freshID)
	require.NoError(t, err)
	assert.Nil(t, fresh.DeletedAt)
}

func TestService_CleansUpExpiredEvents(t *testing.T) {
	client, delService, eventService := setupServices(t)
	ctx := context.Background()

	delID := createCompletedDeliberation(t, client, delService, time.Now())

	// One event past the TTL, one inside it.
	_, err := client.Event.Create().
		SetDeliberationID(delID).
		SetChannel("deliberations").
		SetPayload(map[string]interface{}{"type": "deliberation.status"}).
		SetCreatedAt(time.Now().Add(-2 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = eventService.CreateEvent(ctx, models.CreateEventRequest{
		DeliberationID: delID,
		Channel:        "deliberations",
		Payload:        map[string]any{"type": "deliberation.status"},
	})
	require.NoError(t, err)

	svc := NewService(testRetentionConfig(), delService, eventService)
	svc.runAll(ctx)

	remaining, err := client.Event.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)
}

func TestService_StartStop(t *testing.T) {
	_, delService, eventService := setupServices(t)

	svc := NewService(testRetentionConfig(), delService, eventService)
	svc.Start(context.Background())
	svc.Start(context.Background()) // idempotent
	svc.Stop()
}

func TestService_StopWithoutStart(t *testing.T) {
	_, delService, eventService := setupServices(t)
	svc := NewService(testRetentionConfig(), delService, eventService)
	svc.Stop() // no-op
}
