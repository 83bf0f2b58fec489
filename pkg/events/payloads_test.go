package events

import (
	"testing"
	"time"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBasePayload(t *testing.T) {
	before := time.Now()
	base := NewBasePayload(EventTypeDeliberationStatus, "del_abc")
	after := time.Now()

	assert.Equal(t, EventTypeDeliberationStatus, base.Type)
	assert.Equal(t, "del_abc", base.DeliberationID)

	stamped, err := time.Parse(time.RFC3339Nano, base.Timestamp)
	require.NoError(t, err, "timestamp should be RFC3339Nano")
	assert.False(t, stamped.Before(before.Truncate(time.Second)))
	assert.False(t, stamped.After(after.Add(time.Second)))
}

func TestDeliberationStatusPayload(t *testing.T) {
	t.Run("carries every lifecycle status", func(t *testing.T) {
		statuses := []deliberation.Status{
			deliberation.StatusPending,
			deliberation.StatusInProgress,
			deliberation.StatusCancelling,
			deliberation.StatusCompleted,
			deliberation.StatusFailed,
			deliberation.StatusCancelled,
			deliberation.StatusTimedOut,
		}

		for _, status := range statuses {
			payload := DeliberationStatusPayload{
				BasePayload: NewBasePayload(EventTypeDeliberationStatus, "del_1"),
				Status:      status,
			}
			assert.Equal(t, status, payload.Status)
			assert.Equal(t, "del_1", payload.DeliberationID)
		}
	})

	t.Run("error message on terminal failure", func(t *testing.T) {
		payload := DeliberationStatusPayload{
			BasePayload:  NewBasePayload(EventTypeDeliberationStatus, "del_2"),
			Status:       deliberation.StatusTimedOut,
			ErrorMessage: "deliberation exceeded deadline",
		}
		assert.Equal(t, deliberation.StatusTimedOut, payload.Status)
		assert.Equal(t, "deliberation exceeded deadline", payload.ErrorMessage)
	})
}

func TestGenerationStatusPayload(t *testing.T) {
	t.Run("started event has no usage fields", func(t *testing.T) {
		payload := GenerationStatusPayload{
			BasePayload: NewBasePayload(EventTypeGenerationStatus, "del_3"),
			Role:        "analyst",
			RoleIndex:   0,
			Model:       "anthropic/claude-sonnet-4.5",
			Status:      StageStatusStarted,
		}
		assert.Equal(t, "analyst", payload.Role)
		assert.Zero(t, payload.TokensUsed)
		assert.Zero(t, payload.LatencyMS)
		assert.Empty(t, payload.Error)
	})

	t.Run("completed event carries usage", func(t *testing.T) {
		payload := GenerationStatusPayload{
			BasePayload: NewBasePayload(EventTypeGenerationStatus, "del_3"),
			Role:        "skeptic",
			RoleIndex:   1,
			Model:       "openai/gpt-5",
			Status:      StageStatusCompleted,
			TokensUsed:  1520,
			LatencyMS:   8210,
		}
		assert.Equal(t, StageStatusCompleted, payload.Status)
		assert.Equal(t, 1520, payload.TokensUsed)
		assert.Equal(t, int64(8210), payload.LatencyMS)
	})

	t.Run("failed event carries error", func(t *testing.T) {
		payload := GenerationStatusPayload{
			BasePayload: NewBasePayload(EventTypeGenerationStatus, "del_3"),
			Role:        "pragmatist",
			RoleIndex:   2,
			Model:       "google/gemini-2.5-pro",
			Status:      StageStatusFailed,
			Error:       "provider returned 429",
		}
		assert.Equal(t, StageStatusFailed, payload.Status)
		assert.Equal(t, "provider returned 429", payload.Error)
	})
}

func TestSynthesisStatusPayload(t *testing.T) {
	t.Run("skipped synthesis has no chairman model", func(t *testing.T) {
		payload := SynthesisStatusPayload{
			BasePayload: NewBasePayload(EventTypeSynthesisStatus, "del_4"),
			Status:      StageStatusSkipped,
		}
		assert.Equal(t, StageStatusSkipped, payload.Status)
		assert.Empty(t, payload.ChairmanModel)
	})

	t.Run("started synthesis names the chairman", func(t *testing.T) {
		payload := SynthesisStatusPayload{
			BasePayload:   NewBasePayload(EventTypeSynthesisStatus, "del_4"),
			Status:        StageStatusStarted,
			ChairmanModel: "anthropic/claude-opus-4.5",
		}
		assert.Equal(t, "anthropic/claude-opus-4.5", payload.ChairmanModel)
	})
}

func TestReviewProgressPayload(t *testing.T) {
	payload := ReviewProgressPayload{
		BasePayload: NewBasePayload(EventTypeReviewProgress, "del_5"),
		Done:        2,
		Total:       6,
	}
	assert.Equal(t, EventTypeReviewProgress, payload.Type)
	assert.Equal(t, 2, payload.Done)
	assert.Equal(t, 6, payload.Total)
}

func TestChatMessagePayload(t *testing.T) {
	t.Run("user message carries author", func(t *testing.T) {
		payload := ChatMessagePayload{
			BasePayload: NewBasePayload(EventTypeChatMessage, "del_6"),
			ChatID:      "chat_1",
			MessageID:   "msg_1",
			Role:        chatmessage.RoleUser,
			Content:     "which role dissented?",
			Author:      "alice@example.com",
		}
		assert.Equal(t, chatmessage.RoleUser, payload.Role)
		assert.Equal(t, "alice@example.com", payload.Author)
	})

	t.Run("assistant message has no author", func(t *testing.T) {
		payload := ChatMessagePayload{
			BasePayload: NewBasePayload(EventTypeChatMessage, "del_6"),
			ChatID:      "chat_1",
			MessageID:   "msg_2",
			Role:        chatmessage.RoleAssistant,
			Content:     "the skeptic dissented on point two",
		}
		assert.Equal(t, chatmessage.RoleAssistant, payload.Role)
		assert.Empty(t, payload.Author)
	})
}
