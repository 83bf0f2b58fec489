package events

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{
				Type:           EventTypeChatMessage,
				DeliberationID: "del_abc-123",
			},
			Content: "some content",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeChatMessage)
		assert.Contains(t, result, "del_abc-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'a'
		}
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{
				Type:           EventTypeChatMessage,
				DeliberationID: "del_abc-123",
			},
			MessageID: "msg-123",
			Content:   string(longContent),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, "truncated")
		assert.Less(t, len(result), 8000)
	})

	t.Run("does not truncate small payload", func(t *testing.T) {
		payload, _ := json.Marshal(ReviewProgressPayload{
			BasePayload: BasePayload{
				Type: EventTypeReviewProgress,
			},
			Done:  3,
			Total: 6,
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{
				Type:           EventTypeChatMessage,
				DeliberationID: "del_789",
			},
			MessageID: "msg-456",
			Content:   string(longContent),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)

		assert.Contains(t, result, EventTypeChatMessage)
		assert.Contains(t, result, "del_789")
		assert.Contains(t, result, `"truncated":true`)
		assert.NotContains(t, result, "xxxx")
	})

	t.Run("boundary: payload just under limit is not truncated", func(t *testing.T) {
		// Build a payload whose JSON is just under 7900 bytes.
		// Marshal an empty struct first to measure the overhead of the struct's
		// fixed fields (keys, quotes, separators). The 20-byte safety margin
		// accounts for JSON encoding variability: if new fields with non-zero
		// defaults are added to ChatMessagePayload, the base overhead grows
		// and the margin prevents the test from flipping unexpectedly.
		base, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{Type: "t"},
		})
		contentSize := 7900 - len(base) - 20
		content := make([]byte, contentSize)
		for i := range content {
			content[i] = 'b'
		}
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{Type: "t"},
			Content:     string(content),
		})
		require.LessOrEqual(t, len(payload), 7900, "test payload should be under limit")

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.NotContains(t, result, "truncated")
	})

	t.Run("empty JSON object", func(t *testing.T) {
		result, err := truncateIfNeeded("{}")
		require.NoError(t, err)
		assert.Equal(t, "{}", result)
	})
}

func TestInjectDBEventIDAndTruncate(t *testing.T) {
	t.Run("injects db_event_id into normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{
				Type:           EventTypeChatMessage,
				DeliberationID: "del_1",
			},
			MessageID: "msg-1",
			Content:   "hello",
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "msg-1")
	})

	t.Run("truncated payload preserves db_event_id", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{
				Type:           EventTypeChatMessage,
				DeliberationID: "del_789",
			},
			MessageID: "msg-456",
			Content:   string(longContent),
		})

		result, err := injectDBEventIDAndTruncate(payload, 42)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":42`)
		assert.Contains(t, result, "del_789")
	})

	t.Run("truncated payload without deliberation_id keeps envelope", func(t *testing.T) {
		longContent := make([]byte, 8000)
		for i := range longContent {
			longContent[i] = 'x'
		}
		payload, _ := json.Marshal(ChatMessagePayload{
			BasePayload: BasePayload{
				Type: EventTypeChatMessage,
			},
			Content: string(longContent),
		})

		result, err := injectDBEventIDAndTruncate(payload, 99)
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Contains(t, result, `"db_event_id":99`)
	})
}

func TestNewEventPublisher(t *testing.T) {
	publisher := NewEventPublisher(nil)
	assert.NotNil(t, publisher)
	assert.Nil(t, publisher.db)
}

func TestDeliberationStatusPayload_JSON(t *testing.T) {
	payload := DeliberationStatusPayload{
		BasePayload: BasePayload{
			Type:           EventTypeDeliberationStatus,
			DeliberationID: "del_123",
			Timestamp:      "2026-02-10T12:00:00Z",
		},
		Status:       deliberation.StatusFailed,
		ErrorMessage: "all generations failed",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded DeliberationStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeDeliberationStatus, decoded.Type)
	assert.Equal(t, "del_123", decoded.DeliberationID)
	assert.Equal(t, deliberation.StatusFailed, decoded.Status)
	assert.Equal(t, "all generations failed", decoded.ErrorMessage)
	assert.Equal(t, "2026-02-10T12:00:00Z", decoded.Timestamp)
}

func TestDeliberationStatusPayload_NoError(t *testing.T) {
	// ErrorMessage is only set on failed/timed_out transitions
	payload := DeliberationStatusPayload{
		BasePayload: BasePayload{
			Type:           EventTypeDeliberationStatus,
			DeliberationID: "del_123",
			Timestamp:      "2026-02-10T12:00:00Z",
		},
		Status: deliberation.StatusInProgress,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	// ErrorMessage should be omitted from JSON due to omitempty
	assert.NotContains(t, string(data), "error_message")
}

func TestGenerationStatusPayload_JSON(t *testing.T) {
	payload := GenerationStatusPayload{
		BasePayload: BasePayload{
			Type:           EventTypeGenerationStatus,
			DeliberationID: "del_100",
			Timestamp:      "2026-02-13T10:00:00Z",
		},
		Role:       "skeptic",
		RoleIndex:  1,
		Model:      "openai/gpt-5",
		Status:     StageStatusCompleted,
		TokensUsed: 812,
		LatencyMS:  4231,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded GenerationStatusPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeGenerationStatus, decoded.Type)
	assert.Equal(t, "del_100", decoded.DeliberationID)
	assert.Equal(t, "skeptic", decoded.Role)
	assert.Equal(t, 1, decoded.RoleIndex)
	assert.Equal(t, "openai/gpt-5", decoded.Model)
	assert.Equal(t, StageStatusCompleted, decoded.Status)
	assert.Equal(t, 812, decoded.TokensUsed)
	assert.Equal(t, int64(4231), decoded.LatencyMS)
}

func TestReviewProgressPayload_JSON(t *testing.T) {
	payload := ReviewProgressPayload{
		BasePayload: BasePayload{
			Type:           EventTypeReviewProgress,
			DeliberationID: "del_200",
			Timestamp:      "2026-02-13T10:00:00Z",
		},
		Done:  4,
		Total: 6,
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ReviewProgressPayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeReviewProgress, decoded.Type)
	assert.Equal(t, "del_200", decoded.DeliberationID)
	assert.Equal(t, 4, decoded.Done)
	assert.Equal(t, 6, decoded.Total)
}

func TestChatMessagePayload_JSON(t *testing.T) {
	payload := ChatMessagePayload{
		BasePayload: BasePayload{
			Type:           EventTypeChatMessage,
			DeliberationID: "del_300",
			Timestamp:      "2026-02-13T10:00:00Z",
		},
		ChatID:    "chat_1",
		MessageID: "msg_1",
		Role:      chatmessage.RoleAssistant,
		Content:   "the pragmatist's answer won on margin strength",
	}

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded ChatMessagePayload
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, EventTypeChatMessage, decoded.Type)
	assert.Equal(t, "del_300", decoded.DeliberationID)
	assert.Equal(t, "chat_1", decoded.ChatID)
	assert.Equal(t, "msg_1", decoded.MessageID)
	assert.Equal(t, chatmessage.RoleAssistant, decoded.Role)
	assert.Equal(t, "the pragmatist's answer won on margin strength", decoded.Content)
}
