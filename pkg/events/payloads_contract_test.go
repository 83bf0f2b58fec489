package events

import (
	"encoding/json"
	"testing"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDeliberationChannelPayloads_ContainDeliberationID is a contract test
// between the Go backend and the frontend WebSocket client.
//
// The frontend routes incoming WS events by inspecting `data.deliberation_id`
// in the JSON payload. ANY payload that is broadcast on a deliberation-specific
// channel (deliberation:{id}) MUST include a non-empty `deliberation_id` field
// — otherwise the frontend silently drops it.
//
// All payload structs embed BasePayload which guarantees deliberation_id is
// present. This test guards against:
//   - A new payload struct that forgets to embed BasePayload
//   - A call site that forgets to populate BasePayload.DeliberationID
func TestDeliberationChannelPayloads_ContainDeliberationID(t *testing.T) {
	const testDeliberationID = "del_contract-test"

	// Every payload type that flows through DeliberationChannel(id).
	// If you add a new payload that goes through a deliberation channel,
	// add it here — the test will fail if deliberation_id is missing.
	tests := []struct {
		name    string
		payload any
	}{
		{
			name: "DeliberationStatusPayload",
			payload: DeliberationStatusPayload{
				BasePayload: BasePayload{
					Type:           EventTypeDeliberationStatus,
					DeliberationID: testDeliberationID,
					Timestamp:      "2026-01-01T00:00:00Z",
				},
				Status: deliberation.StatusInProgress,
			},
		},
		{
			name: "GenerationStatusPayload",
			payload: GenerationStatusPayload{
				BasePayload: BasePayload{
					Type:           EventTypeGenerationStatus,
					DeliberationID: testDeliberationID,
					Timestamp:      "2026-01-01T00:00:00Z",
				},
				Role:      "analyst",
				RoleIndex: 0,
				Model:     "anthropic/claude-sonnet-4.5",
				Status:    StageStatusStarted,
			},
		},
		{
			name: "ReviewProgressPayload",
			payload: ReviewProgressPayload{
				BasePayload: BasePayload{
					Type:           EventTypeReviewProgress,
					DeliberationID: testDeliberationID,
					Timestamp:      "2026-01-01T00:00:00Z",
				},
				Done:  1,
				Total: 6,
			},
		},
		{
			name: "SynthesisStatusPayload",
			payload: SynthesisStatusPayload{
				BasePayload: BasePayload{
					Type:           EventTypeSynthesisStatus,
					DeliberationID: testDeliberationID,
					Timestamp:      "2026-01-01T00:00:00Z",
				},
				Status:        StageStatusStarted,
				ChairmanModel: "anthropic/claude-opus-4.5",
			},
		},
		{
			name: "ChatMessagePayload",
			payload: ChatMessagePayload{
				BasePayload: BasePayload{
					Type:           EventTypeChatMessage,
					DeliberationID: testDeliberationID,
					Timestamp:      "2026-01-01T00:00:00Z",
				},
				ChatID:    "chat-1",
				MessageID: "msg-1",
				Role:      chatmessage.RoleUser,
				Content:   "question",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.payload)
			require.NoError(t, err, "failed to marshal %s", tt.name)

			var parsed map[string]any
			require.NoError(t, json.Unmarshal(data, &parsed), "failed to unmarshal %s", tt.name)

			id, ok := parsed["deliberation_id"]
			assert.True(t, ok,
				"%s JSON is missing \"deliberation_id\" field — frontend WS routing will silently drop this event", tt.name)
			assert.Equal(t, testDeliberationID, id,
				"%s deliberation_id has wrong value", tt.name)
		})
	}
}

// TestGlobalChannelStatusPayload_ContainsDeliberationID verifies the status
// payload copy broadcast on GlobalDeliberationsChannel. Although it is not on
// a per-deliberation channel, it still carries deliberation_id so the list
// page can match the event to a row.
func TestGlobalChannelStatusPayload_ContainsDeliberationID(t *testing.T) {
	payload := DeliberationStatusPayload{
		BasePayload: BasePayload{
			Type:           EventTypeDeliberationStatus,
			DeliberationID: "del-list-row",
			Timestamp:      "2026-01-01T00:00:00Z",
		},
		Status: deliberation.StatusCompleted,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(data, &parsed))

	id, ok := parsed["deliberation_id"]
	assert.True(t, ok, "DeliberationStatusPayload is missing deliberation_id")
	assert.Equal(t, "del-list-row", id)
}
