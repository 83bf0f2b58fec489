package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/pkg/council"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/models"
	"github.com/plenumhq/plenum/pkg/services"
	testdb "github.com/plenumhq/plenum/test/database"
)

// setupChatTurn creates a deliberation with a chat holding one user message.
func setupChatTurn(t *testing.T, delService *services.DeliberationService, chatService *services.ChatService) ChatTurnInput {
	t.Helper()
	ctx := context.Background()

	del := createPendingDeliberation(t, delService)

	chatObj, created, err := chatService.EnsureChat(ctx, del.ID, "tester@example.com")
	require.NoError(t, err)
	require.True(t, created)

	msg, err := chatService.AppendUserMessage(ctx, models.AddChatMessageRequest{
		ChatID:  chatObj.ID,
		Content: "Which perspective carried the ranking?",
		Author:  "tester@example.com",
	})
	require.NoError(t, err)

	return ChatTurnInput{Chat: chatObj, Message: msg, Deliberation: del}
}

func TestChatExecutor_Turn(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, chatService := newTestServices(client.Client)
	ctx := context.Background()

	input := setupChatTurn(t, delService, chatService)

	provider := &stubProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		return &llm.Completion{Text: "The analyst's answer ranked highest.", TokensUsed: 12}, nil
	}}
	exec := NewChatExecutor("pod-chat", provider, delService, chatService, nil)
	defer exec.Stop()

	require.NoError(t, exec.Submit(ctx, input))

	require.Eventually(t, func() bool {
		msgs, err := chatService.ListMessages(ctx, input.Chat.ID)
		if err != nil {
			return false
		}
		for _, m := range msgs {
			if m.Role == chatmessage.RoleAssistant {
				return m.Content == "The analyst's answer ranked highest."
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)
}

func TestChatExecutor_DigestInSystemPrompt(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, chatService := newTestServices(client.Client)
	ctx := context.Background()

	input := setupChatTurn(t, delService, chatService)

	reqCh := make(chan llm.CompletionRequest, 1)
	provider := &stubProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		reqCh <- req
		return &llm.Completion{Text: "reply"}, nil
	}}
	exec := NewChatExecutor("pod-chat", provider, delService, chatService, nil)
	defer exec.Stop()

	require.NoError(t, exec.Submit(ctx, input))

	var seen llm.CompletionRequest
	select {
	case seen = <-reqCh:
	case <-time.After(5 * time.Second):
		t.Fatal("chairman call never happened")
	}

	assert.Equal(t, "test/chairman", seen.Model)
	assert.Contains(t, seen.System, input.Deliberation.Task)
	assert.Contains(t, seen.User, "Which perspective carried the ranking?")
	assert.Contains(t, seen.User, "Chairman:")
}

func TestChatExecutor_OneTurnAtATime(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, chatService := newTestServices(client.Client)
	ctx := context.Background()

	input := setupChatTurn(t, delService, chatService)

	release := make(chan struct{})
	provider := &stubProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		<-release
		return &llm.Completion{Text: "reply"}, nil
	}}
	exec := NewChatExecutor("pod-chat", provider, delService, chatService, nil)
	defer exec.Stop()

	require.NoError(t, exec.Submit(ctx, input))
	assert.ErrorIs(t, exec.Submit(ctx, input), ErrChatTurnActive)

	close(release)
	require.Eventually(t, func() bool {
		return exec.Submit(ctx, input) == nil
	}, 5*time.Second, 50*time.Millisecond)
}

func TestChatExecutor_NoChairmanModel(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, chatService := newTestServices(client.Client)
	ctx := context.Background()

	// Perspectives-only run: no chairman to answer follow-ups.
	del, err := delService.Create(ctx, models.CreateDeliberationRequest{
		Task: "Compare the caching strategies",
		Roles: []council.Role{
			{Name: "optimist", Model: "test/model-a"},
			{Name: "pessimist", Model: "test/model-b"},
		},
		Options: &models.DeliberationOptions{OutputMode: "perspectives"},
	})
	require.NoError(t, err)

	chatObj, _, err := chatService.EnsureChat(ctx, del.ID, "tester@example.com")
	require.NoError(t, err)
	msg, err := chatService.AppendUserMessage(ctx, models.AddChatMessageRequest{
		ChatID: chatObj.ID, Content: "why?", Author: "tester@example.com",
	})
	require.NoError(t, err)

	exec := NewChatExecutor("pod-chat", &stubProvider{}, delService, chatService, nil)
	defer exec.Stop()

	err = exec.Submit(ctx, ChatTurnInput{Chat: chatObj, Message: msg, Deliberation: del})
	assert.ErrorIs(t, err, ErrNoChairmanModel)
}

func TestChatExecutor_StopRejectsNewTurns(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, chatService := newTestServices(client.Client)

	input := setupChatTurn(t, delService, chatService)

	exec := NewChatExecutor("pod-chat", &stubProvider{}, delService, chatService, nil)
	exec.Stop()

	err := exec.Submit(context.Background(), input)
	assert.ErrorIs(t, err, ErrShuttingDown)
}

func TestChatExecutor_CancelByDeliberationID(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService, _, chatService := newTestServices(client.Client)
	ctx := context.Background()

	input := setupChatTurn(t, delService, chatService)

	release := make(chan struct{})
	provider := &stubProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		<-release
		return &llm.Completion{Text: "late"}, nil
	}}
	exec := NewChatExecutor("pod-chat", provider, delService, chatService, nil)
	defer exec.Stop()

	require.NoError(t, exec.Submit(ctx, input))

	// Registration happens synchronously in Submit.
	assert.False(t, exec.CancelByDeliberationID("del_unknown"))
	assert.True(t, exec.CancelByDeliberationID(input.Deliberation.ID))

	close(release)
	// The goroutine unregisters once it drains.
	require.Eventually(t, func() bool {
		return !exec.CancelByDeliberationID(input.Deliberation.ID)
	}, 5*time.Second, 50*time.Millisecond)
}
