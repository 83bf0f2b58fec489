package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/pkg/database"
	"github.com/plenumhq/plenum/pkg/services"
	testdb "github.com/plenumhq/plenum/test/database"
	"github.com/plenumhq/plenum/test/util"
)

// streamingTestEnv holds all wired-up components for an integration test.
type streamingTestEnv struct {
	dbClient       *database.Client
	publisher      *EventPublisher
	eventService   *services.EventService
	manager        *ConnectionManager
	listener       *NotifyListener
	server         *httptest.Server
	deliberationID string // Pre-created Deliberation (satisfies FK on events)
	channel        string // deliberation:<deliberationID>
}

// setupStreamingTest wires all real components together against a real
// PostgreSQL database (testcontainers locally, service container in CI).
func setupStreamingTest(t *testing.T) *streamingTestEnv {
	t.Helper()

	dbClient := testdb.NewTestClient(t)
	ctx := context.Background()

	// Create Deliberation required by FK on events table
	deliberationID := "del_" + uuid.New().String()
	_, err := dbClient.Deliberation.Create().
		SetID(deliberationID).
		SetTask("integration test task").
		SetRoles([]map[string]interface{}{{"name": "analyst", "model": "test/model-a"}}).
		SetOptions(map[string]interface{}{"output_mode": "synthesis"}).
		SetAuthor("integration-test").
		Save(ctx)
	require.NoError(t, err)

	channel := DeliberationChannel(deliberationID)

	// Real components
	publisher := NewEventPublisher(dbClient.DB())
	eventService := services.NewEventService(dbClient.Client)
	catchupQuerier := NewEventServiceAdapter(eventService)
	manager := NewConnectionManager(catchupQuerier, 5*time.Second)

	// NotifyListener needs the base connection string (no schema search_path)
	// because NOTIFY/LISTEN is database-level, not schema-level.
	baseConnStr := util.GetBaseConnectionString(t)
	listener := NewNotifyListener(baseConnStr, manager)
	require.NoError(t, listener.Start(ctx))
	manager.SetListener(listener)

	t.Cleanup(func() { listener.Stop(context.Background()) })

	// httptest server with WebSocket upgrade
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(func() { server.Close() })

	return &streamingTestEnv{
		dbClient:       dbClient,
		publisher:      publisher,
		eventService:   eventService,
		manager:        manager,
		listener:       listener,
		server:         server,
		deliberationID: deliberationID,
		channel:        channel,
	}
}

// connectWS opens a WebSocket to the test server and returns the connection.
// The connection is automatically closed on test cleanup.
func (env *streamingTestEnv) connectWS(t *testing.T) *websocket.Conn {
	t.Helper()
	url := "ws" + env.server.URL[len("http"):]
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

// readJSONTimeout reads a JSON message from the WebSocket with a timeout.
func readJSONTimeout(t *testing.T, conn *websocket.Conn, timeout time.Duration) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// subscribeAndWait connects a WebSocket, reads connection.established,
// subscribes to the env's channel, reads subscription.confirmed, and
// waits for the LISTEN to propagate.
func (env *streamingTestEnv) subscribeAndWait(t *testing.T) *websocket.Conn {
	t.Helper()
	conn := env.connectWS(t)

	// Read connection.established
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))

	// Read subscription.confirmed
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Wait for the async LISTEN goroutine to complete on the NotifyListener's
	// dedicated connection, polling instead of sleeping.
	require.Eventually(t, func() bool {
		return env.listener.isListening(env.channel)
	}, 2*time.Second, 10*time.Millisecond, "LISTEN did not propagate for channel %s", env.channel)

	return conn
}

// --- Tests ---

func TestIntegration_PublisherPersistsAndNotifies(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish first event (generation started)
	err := env.publisher.PublishGenerationStatus(ctx, GenerationStatusPayload{
		BasePayload: NewBasePayload(EventTypeGenerationStatus, env.deliberationID),
		Role:        "analyst",
		RoleIndex:   0,
		Model:       "test/model-a",
		Status:      StageStatusStarted,
	})
	require.NoError(t, err)

	// Publish second event (generation completed)
	err = env.publisher.PublishGenerationStatus(ctx, GenerationStatusPayload{
		BasePayload: NewBasePayload(EventTypeGenerationStatus, env.deliberationID),
		Role:        "analyst",
		RoleIndex:   0,
		Model:       "test/model-a",
		Status:      StageStatusCompleted,
		TokensUsed:  512,
		LatencyMS:   1800,
	})
	require.NoError(t, err)

	// Query persisted events via EventService
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Verify order and content
	assert.Equal(t, env.deliberationID, events[0].DeliberationID)
	assert.Equal(t, env.channel, events[0].Channel)
	assert.Equal(t, EventTypeGenerationStatus, events[0].Payload["type"])
	assert.Equal(t, "started", events[0].Payload["status"])

	assert.Equal(t, EventTypeGenerationStatus, events[1].Payload["type"])
	assert.Equal(t, "completed", events[1].Payload["status"])
	assert.Equal(t, float64(512), events[1].Payload["tokens_used"], "completed event should persist usage")

	// IDs should be incrementing
	assert.Greater(t, events[1].ID, events[0].ID)
}

func TestIntegration_TransientEventsNotPersisted(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Publish transient event (review progress)
	err := env.publisher.PublishReviewProgress(ctx, ReviewProgressPayload{
		BasePayload: NewBasePayload(EventTypeReviewProgress, env.deliberationID),
		Done:        1,
		Total:       6,
	})
	require.NoError(t, err)

	// Query DB — should have zero persisted events
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted in DB")
}

func TestIntegration_EndToEnd_PublishToWebSocket(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, and wait for LISTEN to propagate
	conn := env.subscribeAndWait(t)

	// Publish a persistent event via EventPublisher
	err := env.publisher.PublishSynthesisStatus(ctx, SynthesisStatusPayload{
		BasePayload:   NewBasePayload(EventTypeSynthesisStatus, env.deliberationID),
		Status:        StageStatusStarted,
		ChairmanModel: "test/chairman",
	})
	require.NoError(t, err)

	// Read from WebSocket — the event should arrive via pg_notify → listener → manager
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSynthesisStatus, msg["type"])
	assert.Equal(t, "test/chairman", msg["chairman_model"])
	assert.Equal(t, env.deliberationID, msg["deliberation_id"])
	// db_event_id should be present (added by persistAndNotify after INSERT)
	assert.NotNil(t, msg["db_event_id"])
}

func TestIntegration_TransientEventDelivery(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Connect, subscribe, wait for LISTEN
	conn := env.subscribeAndWait(t)

	// Publish transient event (no DB persistence)
	err := env.publisher.PublishReviewProgress(ctx, ReviewProgressPayload{
		BasePayload: NewBasePayload(EventTypeReviewProgress, env.deliberationID),
		Done:        3,
		Total:       6,
	})
	require.NoError(t, err)

	// Should arrive via WebSocket
	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeReviewProgress, msg["type"])
	assert.Equal(t, float64(3), msg["done"])
	assert.Equal(t, float64(6), msg["total"])

	// Verify nothing was persisted
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, events, "transient events should not be persisted")
}

func TestIntegration_ReviewProgressProtocol(t *testing.T) {
	// Verifies the live-run event protocol:
	// 1. generation.status per role (persistent)
	// 2. review.progress ticks (transient, high frequency)
	// 3. synthesis.status (persistent)
	// A reconnecting client replays only the persistent events.
	env := setupStreamingTest(t)
	ctx := context.Background()

	conn := env.subscribeAndWait(t)

	// 1. Publish a generation.status (persistent)
	err := env.publisher.PublishGenerationStatus(ctx, GenerationStatusPayload{
		BasePayload: NewBasePayload(EventTypeGenerationStatus, env.deliberationID),
		Role:        "analyst",
		RoleIndex:   0,
		Model:       "test/model-a",
		Status:      StageStatusCompleted,
		TokensUsed:  400,
	})
	require.NoError(t, err)

	msg := readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeGenerationStatus, msg["type"])
	assert.Equal(t, "analyst", msg["role"])

	// 2. Publish review.progress ticks (transient)
	total := 6
	for done := 1; done <= total; done++ {
		err := env.publisher.PublishReviewProgress(ctx, ReviewProgressPayload{
			BasePayload: NewBasePayload(EventTypeReviewProgress, env.deliberationID),
			Done:        done,
			Total:       total,
		})
		require.NoError(t, err)

		msg := readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeReviewProgress, msg["type"])
		assert.Equal(t, float64(done), msg["done"], "each tick should carry the running count")
	}

	// 3. Publish synthesis.status (persistent)
	err = env.publisher.PublishSynthesisStatus(ctx, SynthesisStatusPayload{
		BasePayload:   NewBasePayload(EventTypeSynthesisStatus, env.deliberationID),
		Status:        StageStatusCompleted,
		ChairmanModel: "test/chairman",
	})
	require.NoError(t, err)

	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeSynthesisStatus, msg["type"])
	assert.Equal(t, "completed", msg["status"])

	// Only the 2 persistent events should be in DB.
	// The 6 review.progress ticks are transient — not persisted.
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	assert.Len(t, events, 2, "only persistent events should be in DB")
	assert.Equal(t, EventTypeGenerationStatus, events[0].Payload["type"])
	assert.Equal(t, EventTypeSynthesisStatus, events[1].Payload["type"])
}

func TestIntegration_StatusDualChannel(t *testing.T) {
	// deliberation.status is persisted on the deliberation channel and a
	// transient copy goes out on the global channel for the list page.
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Subscribe a client to the GLOBAL channel
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "connection.established", msg["type"])

	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: GlobalDeliberationsChannel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second)
	require.Equal(t, "subscription.confirmed", msg["type"])

	require.Eventually(t, func() bool {
		return env.listener.isListening(GlobalDeliberationsChannel)
	}, 2*time.Second, 10*time.Millisecond)

	err := env.publisher.PublishDeliberationStatus(ctx, DeliberationStatusPayload{
		BasePayload: NewBasePayload(EventTypeDeliberationStatus, env.deliberationID),
		Status:      "in_progress",
	})
	require.NoError(t, err)

	// Global subscriber receives the status event
	msg = readJSONTimeout(t, conn, 5*time.Second)
	assert.Equal(t, EventTypeDeliberationStatus, msg["type"])
	assert.Equal(t, env.deliberationID, msg["deliberation_id"])

	// Persistent copy lands on the deliberation channel, not the global one
	events, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, env.channel, events[0].Channel)

	globalEvents, err := env.eventService.GetEventsSince(ctx, GlobalDeliberationsChannel, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, globalEvents, "global channel copy is transient")
}

func TestIntegration_CatchupFromRealDB(t *testing.T) {
	env := setupStreamingTest(t)
	ctx := context.Background()

	// Pre-populate DB with 3 persistent events
	for i := 1; i <= 3; i++ {
		err := env.publisher.PublishGenerationStatus(ctx, GenerationStatusPayload{
			BasePayload: NewBasePayload(EventTypeGenerationStatus, env.deliberationID),
			Role:        "analyst",
			RoleIndex:   i,
			Model:       "test/model-a",
			Status:      StageStatusStarted,
		})
		require.NoError(t, err)
	}

	// Verify events exist in DB
	allEvents, err := env.eventService.GetEventsSince(ctx, env.channel, 0, 100)
	require.NoError(t, err)
	require.Len(t, allEvents, 3)
	firstEventID := allEvents[0].ID

	// Connect a NEW WebSocket client (simulates reconnection)
	conn := env.connectWS(t)
	msg := readJSONTimeout(t, conn, 5*time.Second) // connection.established
	require.Equal(t, "connection.established", msg["type"])

	// Subscribe — auto-catchup delivers all 3 prior events immediately
	subMsg, _ := json.Marshal(ClientMessage{Action: "subscribe", Channel: env.channel})
	writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(writeCtx, websocket.MessageText, subMsg))
	msg = readJSONTimeout(t, conn, 5*time.Second) // subscription.confirmed
	require.Equal(t, "subscription.confirmed", msg["type"])

	// Read all 3 auto-catchup events in order
	for i := 1; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, EventTypeGenerationStatus, msg["type"])
		assert.Equal(t, float64(i), msg["role_index"])
	}

	// Explicit catchup from the first event's ID — should return only events 2 and 3
	catchupFrom := firstEventID
	catchupMsg, _ := json.Marshal(ClientMessage{
		Action:      "catchup",
		Channel:     env.channel,
		LastEventID: &catchupFrom,
	})
	writeCtx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	require.NoError(t, conn.Write(writeCtx2, websocket.MessageText, catchupMsg))

	for i := 2; i <= 3; i++ {
		msg = readJSONTimeout(t, conn, 5*time.Second)
		assert.Equal(t, float64(i), msg["role_index"])
	}

	// No more messages — verify with short timeout
	readCtx, readCancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer readCancel()
	_, _, err = conn.Read(readCtx)
	assert.Error(t, err, "should not receive more messages after catchup")
}
