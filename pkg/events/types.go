// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN for cross-pod distribution.
//
// Two channel kinds exist:
//
//   - "deliberations" — global lifecycle events, subscribed by the
//     dashboard list page.
//   - "deliberation:<id>" — per-deliberation detail events, subscribed by
//     the detail page while a run is live.
//
// Persistent event types are written to the events table in the same
// transaction as the NOTIFY, so a reconnecting client can catch up from its
// last seen event id. Transient event types (review.progress) are
// NOTIFY-only: high-frequency progress ticks that are worthless after the
// fact and are simply lost on disconnect.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Deliberation lifecycle — single event type for all status transitions
	EventTypeDeliberationStatus = "deliberation.status"

	// Per-role generation lifecycle (started, completed, failed)
	EventTypeGenerationStatus = "generation.status"

	// Synthesis lifecycle (started, completed, failed, skipped)
	EventTypeSynthesisStatus = "synthesis.status"

	// Follow-up chat messages (user questions and chairman replies)
	EventTypeChatMessage = "chat.message"
)

// Generation and synthesis status values.
const (
	StageStatusStarted   = "started"
	StageStatusCompleted = "completed"
	StageStatusFailed    = "failed"
	StageStatusSkipped   = "skipped"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Pairwise review progress — high-frequency, ephemeral.
	EventTypeReviewProgress = "review.progress"
)

// GlobalDeliberationsChannel is the channel for deliberation-level status
// events. The dashboard list page subscribes to this for real-time updates.
const GlobalDeliberationsChannel = "deliberations"

// DeliberationChannel returns the channel name for a specific
// deliberation's events. Format: "deliberation:{deliberation_id}"
func DeliberationChannel(deliberationID string) string {
	return "deliberation:" + deliberationID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "deliberation:del_abc")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
