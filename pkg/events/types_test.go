package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeliberationChannel(t *testing.T) {
	tests := []struct {
		name           string
		deliberationID string
		want           string
	}{
		{
			name:           "formats deliberation channel correctly",
			deliberationID: "del_abc-123",
			want:           "deliberation:del_abc-123",
		},
		{
			name:           "handles UUID format",
			deliberationID: "del_550e8400-e29b-41d4-a716-446655440000",
			want:           "deliberation:del_550e8400-e29b-41d4-a716-446655440000",
		},
		{
			name:           "handles empty string",
			deliberationID: "",
			want:           "deliberation:",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeliberationChannel(tt.deliberationID)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEventTypeConstants(t *testing.T) {
	// Verify event types are non-empty and distinct
	types := []string{
		EventTypeDeliberationStatus,
		EventTypeGenerationStatus,
		EventTypeSynthesisStatus,
		EventTypeChatMessage,
		EventTypeReviewProgress,
	}

	seen := make(map[string]bool)
	for _, typ := range types {
		assert.NotEmpty(t, typ, "event type should not be empty")
		assert.False(t, seen[typ], "duplicate event type: %s", typ)
		seen[typ] = true
	}
}

func TestStageStatusConstants(t *testing.T) {
	statuses := []string{
		StageStatusStarted,
		StageStatusCompleted,
		StageStatusFailed,
		StageStatusSkipped,
	}

	seen := make(map[string]bool)
	for _, status := range statuses {
		assert.NotEmpty(t, status, "status value should not be empty")
		assert.False(t, seen[status], "duplicate status value: %s", status)
		seen[status] = true
	}
}

func TestGlobalDeliberationsChannel(t *testing.T) {
	assert.Equal(t, "deliberations", GlobalDeliberationsChannel)
}
