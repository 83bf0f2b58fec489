package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/pkg/models"
	testdb "github.com/plenumhq/plenum/test/database"
)

func TestChatService(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService := setupTestDeliberationService(t, client.Client)
	service := NewChatService(client.Client)
	ctx := context.Background()

	del, err := delService.Create(ctx, models.CreateDeliberationRequest{
		Task:    "chat about me",
		Council: "general",
	})
	require.NoError(t, err)

	t.Run("ensure creates once", func(t *testing.T) {
		chat, created, err := service.EnsureChat(ctx, del.ID, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, del.ID, chat.DeliberationID)

		again, created, err := service.EnsureChat(ctx, del.ID, "bob@example.com")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, chat.ID, again.ID)
	})

	t.Run("ensure rejects unknown deliberation", func(t *testing.T) {
		_, _, err := service.EnsureChat(ctx, "del_missing", "alice@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("messages round trip in order", func(t *testing.T) {
		chat, _, err := service.EnsureChat(ctx, del.ID, "alice@example.com")
		require.NoError(t, err)

		userMsg, err := service.AppendUserMessage(ctx, models.AddChatMessageRequest{
			ChatID:  chat.ID,
			Content: "why did the skeptic lose?",
			Author:  "alice@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, chatmessage.RoleUser, userMsg.Role)

		reply, err := service.AppendAssistantMessage(ctx, chat.ID, "because of the margins", 42)
		require.NoError(t, err)
		assert.Equal(t, chatmessage.RoleAssistant, reply.Role)
		assert.Equal(t, 42, reply.TokensUsed)

		messages, err := service.ListMessages(ctx, chat.ID)
		require.NoError(t, err)
		require.Len(t, messages, 2)
		assert.Equal(t, chatmessage.RoleUser, messages[0].Role)
		assert.Equal(t, chatmessage.RoleAssistant, messages[1].Role)
	})

	t.Run("append validates input", func(t *testing.T) {
		_, err := service.AppendUserMessage(ctx, models.AddChatMessageRequest{Content: "x", Author: "a"})
		assert.True(t, IsValidationError(err))

		_, err = service.AppendUserMessage(ctx, models.AddChatMessageRequest{ChatID: "c", Author: "a"})
		assert.True(t, IsValidationError(err))

		_, err = service.AppendUserMessage(ctx, models.AddChatMessageRequest{ChatID: "chat_missing", Content: "x", Author: "a"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("delete message", func(t *testing.T) {
		chat, _, err := service.EnsureChat(ctx, del.ID, "alice@example.com")
		require.NoError(t, err)

		msg, err := service.AppendUserMessage(ctx, models.AddChatMessageRequest{
			ChatID:  chat.ID,
			Content: "transient",
			Author:  "alice@example.com",
		})
		require.NoError(t, err)
		require.NoError(t, service.DeleteMessage(ctx, msg.ID))

		messages, err := service.ListMessages(ctx, chat.ID)
		require.NoError(t, err)
		for _, m := range messages {
			assert.NotEqual(t, msg.ID, m.ID)
		}
	})

	t.Run("lookup by deliberation", func(t *testing.T) {
		chat, err := service.GetChatByDeliberationID(ctx, del.ID)
		require.NoError(t, err)
		require.NotNil(t, chat)

		none, err := service.GetChatByDeliberationID(ctx, "del_missing")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("heartbeat", func(t *testing.T) {
		chat, _, err := service.EnsureChat(ctx, del.ID, "alice@example.com")
		require.NoError(t, err)
		require.NoError(t, service.UpdateChatHeartbeat(ctx, chat.ID, "pod-1"))

		updated, err := service.GetChatByDeliberationID(ctx, del.ID)
		require.NoError(t, err)
		require.NotNil(t, updated.PodID)
		assert.Equal(t, "pod-1", *updated.PodID)
		assert.NotNil(t, updated.LastInteractionAt)
	})
}
