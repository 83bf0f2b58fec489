package slack

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTerminalMessage_Completed(t *testing.T) {
	input := DeliberationCompletedInput{
		DeliberationID: "del_1",
		Task:           "Should we migrate to event sourcing?",
		Status:         "completed",
		Synthesis:      "The council leans no: the added complexity outweighs the benefits.",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Deliberation Complete")
	assert.Contains(t, header.Text.Text, "Should we migrate to event sourcing?")

	content := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, content.Text.Text, "The council leans no")

	action := blocks[2].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "View Synthesis", btn.Text.Text)
	assert.Contains(t, btn.URL, "https://dash.example.com/deliberations/del_1")
}

func TestBuildTerminalMessage_CompletedNoSynthesis(t *testing.T) {
	// perspectives-only runs complete without a synthesis
	input := DeliberationCompletedInput{
		DeliberationID: "del_2",
		Status:         "completed",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "Deliberation Complete")
}

func TestBuildTerminalMessage_Failed(t *testing.T) {
	input := DeliberationCompletedInput{
		DeliberationID: "del_3",
		Status:         "failed",
		ErrorMessage:   "all generations failed",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 3)

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Deliberation Failed")

	errBlock := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, errBlock.Text.Text, "all generations failed")

	action := blocks[2].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
}

func TestBuildTerminalMessage_TimedOut(t *testing.T) {
	input := DeliberationCompletedInput{
		DeliberationID: "del_4",
		Status:         "timed_out",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":hourglass:")
	assert.Contains(t, header.Text.Text, "Deliberation Timed Out")
}

func TestBuildTerminalMessage_Cancelled(t *testing.T) {
	input := DeliberationCompletedInput{
		DeliberationID: "del_5",
		Status:         "cancelled",
	}
	blocks := BuildTerminalMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":no_entry_sign:")
	assert.Contains(t, header.Text.Text, "Deliberation Cancelled")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		// Verify it's valid UTF-8 by ensuring no broken runes.
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		// Should contain exactly maxBlockTextLength emoji runes before the suffix.
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
