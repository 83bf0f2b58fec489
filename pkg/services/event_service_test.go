package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/pkg/models"
	testdb "github.com/plenumhq/plenum/test/database"
)

func TestEventService(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService := setupTestDeliberationService(t, client.Client)
	service := NewEventService(client.Client)
	ctx := context.Background()

	del, err := delService.Create(ctx, models.CreateDeliberationRequest{
		Task:    "emit events",
		Council: "general",
	})
	require.NoError(t, err)

	channel := "deliberation:" + del.ID

	var lastID int
	for i := 0; i < 5; i++ {
		evt, err := service.CreateEvent(ctx, models.CreateEventRequest{
			DeliberationID: del.ID,
			Channel:        channel,
			Payload:        map[string]any{"type": "generation.status", "seq": i},
		})
		require.NoError(t, err)
		assert.Greater(t, evt.ID, lastID, "event ids must be monotonically increasing")
		lastID = evt.ID
	}

	t.Run("catch-up since id", func(t *testing.T) {
		all, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		require.Len(t, all, 5)

		tail, err := service.GetEventsSince(ctx, channel, all[2].ID, 0)
		require.NoError(t, err)
		assert.Len(t, tail, 2)
	})

	t.Run("catch-up respects limit", func(t *testing.T) {
		limited, err := service.GetEventsSince(ctx, channel, 0, 3)
		require.NoError(t, err)
		assert.Len(t, limited, 3)
	})

	t.Run("other channels are invisible", func(t *testing.T) {
		events, err := service.GetEventsSince(ctx, "deliberations", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("cleanup by deliberation", func(t *testing.T) {
		count, err := service.CleanupDeliberationEvents(ctx, del.ID)
		require.NoError(t, err)
		assert.Equal(t, 5, count)

		remaining, err := service.GetEventsSince(ctx, channel, 0, 0)
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("cleanup by ttl", func(t *testing.T) {
		_, err := service.CreateEvent(ctx, models.CreateEventRequest{
			DeliberationID: del.ID,
			Channel:        channel,
			Payload:        map[string]any{"type": "deliberation.status"},
		})
		require.NoError(t, err)

		// Generous TTL keeps the fresh event
		count, err := service.CleanupOrphanedEvents(ctx, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 0, count)

		// Zero TTL expires everything
		time.Sleep(10 * time.Millisecond)
		count, err = service.CleanupOrphanedEvents(ctx, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}
