package events

import (
	"time"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
)

// BasePayload carries the fields every event payload shares. The Type field
// is the client's dispatch key; DeliberationID routes list-page events to
// the right row.
type BasePayload struct {
	Type           string `json:"type"`
	DeliberationID string `json:"deliberation_id"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// NewBasePayload stamps a payload header with the current time.
func NewBasePayload(eventType, deliberationID string) BasePayload {
	return BasePayload{
		Type:           eventType,
		DeliberationID: deliberationID,
		Timestamp:      time.Now().Format(time.RFC3339Nano),
	}
}

// DeliberationStatusPayload is the payload for deliberation.status events.
// Published on every lifecycle transition.
type DeliberationStatusPayload struct {
	BasePayload
	Status       deliberation.Status `json:"status"`                  // pending, in_progress, cancelling, completed, failed, cancelled, timed_out
	ErrorMessage string              `json:"error_message,omitempty"` // set on failed/timed_out
}

// GenerationStatusPayload is the payload for generation.status events.
// One started and one terminal event per role seat.
type GenerationStatusPayload struct {
	BasePayload
	Role       string `json:"role"`
	RoleIndex  int    `json:"role_index"`
	Model      string `json:"model"`
	Status     string `json:"status"` // started, completed, failed
	TokensUsed int    `json:"tokens_used,omitempty"`
	LatencyMS  int64  `json:"latency_ms,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ReviewProgressPayload is the payload for review.progress transient
// events. Published as pairwise judge calls finish.
type ReviewProgressPayload struct {
	BasePayload
	Done  int `json:"done"`
	Total int `json:"total"`
}

// SynthesisStatusPayload is the payload for synthesis.status events.
type SynthesisStatusPayload struct {
	BasePayload
	Status        string `json:"status"` // started, completed, failed, skipped
	ChairmanModel string `json:"chairman_model,omitempty"`
}

// ChatMessagePayload is the payload for chat.message events. Published for
// both user questions and chairman replies.
type ChatMessagePayload struct {
	BasePayload
	ChatID    string           `json:"chat_id"`
	MessageID string           `json:"message_id"`
	Role      chatmessage.Role `json:"role"` // user, assistant
	Content   string           `json:"content"`
	Author    string           `json:"author,omitempty"`
}
