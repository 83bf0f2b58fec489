package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/queue"
)

// withChatExecutor attaches a chat executor backed by the given provider
// and arranges its shutdown.
func (ts *testServer) withChatExecutor(t *testing.T, provider *scriptedProvider) {
	t.Helper()
	exec := queue.NewChatExecutor("pod-api-test", provider, ts.deliberations, ts.chats, nil)
	t.Cleanup(exec.Stop)
	ts.server.SetChatExecutor(exec)
}

func TestSendChatMessage(t *testing.T) {
	ts := newTestServer(t)
	ts.withChatExecutor(t, &scriptedProvider{})
	ctx := context.Background()

	id := ts.createDeliberation(t)
	require.NoError(t, ts.deliberations.UpdateStatus(ctx, id, deliberation.StatusCompleted, ""))

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "Which perspective carried the ranking?",
	}, map[string]string{"X-Forwarded-Email": "alice@example.com"})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp SendChatMessageResponse
	decodeBody(t, rec, &resp)
	require.NotEmpty(t, resp.ChatID)
	require.NotEmpty(t, resp.MessageID)

	// The chairman reply lands asynchronously.
	require.Eventually(t, func() bool {
		msgs, err := ts.chats.ListMessages(ctx, resp.ChatID)
		if err != nil {
			return false
		}
		for _, m := range msgs {
			if m.Role == chatmessage.RoleAssistant {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)
}

func TestSendChatMessage_NotTerminal(t *testing.T) {
	ts := newTestServer(t)
	ts.withChatExecutor(t, &scriptedProvider{})

	id := ts.createDeliberation(t) // still pending

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "too early",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendChatMessage_EmptyContent(t *testing.T) {
	ts := newTestServer(t)
	ts.withChatExecutor(t, &scriptedProvider{})
	ctx := context.Background()

	id := ts.createDeliberation(t)
	require.NoError(t, ts.deliberations.UpdateStatus(ctx, id, deliberation.StatusCompleted, ""))

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendChatMessage_NoExecutor(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	id := ts.createDeliberation(t)
	require.NoError(t, ts.deliberations.UpdateStatus(ctx, id, deliberation.StatusCompleted, ""))

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "hello",
	}, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSendChatMessage_RejectedMessageIsDropped(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()

	// A provider that blocks the first turn so the second submission is
	// rejected with a conflict.
	release := make(chan struct{})
	ts.withChatExecutor(t, &scriptedProvider{script: blockUntil(release)})
	defer close(release)

	id := ts.createDeliberation(t)
	require.NoError(t, ts.deliberations.UpdateStatus(ctx, id, deliberation.StatusCompleted, ""))

	first := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "first question",
	}, nil)
	require.Equal(t, http.StatusAccepted, first.Code)

	second := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "second question",
	}, nil)
	require.Equal(t, http.StatusConflict, second.Code)

	// Only the accepted question remains persisted.
	chatObj, err := ts.chats.GetChatByDeliberationID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, chatObj)
	msgs, err := ts.chats.ListMessages(ctx, chatObj.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "first question", msgs[0].Content)
}

func TestGetChat(t *testing.T) {
	ts := newTestServer(t)
	ts.withChatExecutor(t, &scriptedProvider{})
	ctx := context.Background()

	id := ts.createDeliberation(t)
	require.NoError(t, ts.deliberations.UpdateStatus(ctx, id, deliberation.StatusCompleted, ""))

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/chat", map[string]interface{}{
		"content": "Which perspective carried the ranking?",
	}, nil)
	require.Equal(t, http.StatusAccepted, rec.Code)

	get := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/"+id+"/chat", nil, nil)
	require.Equal(t, http.StatusOK, get.Code)

	var body struct {
		Chat     map[string]interface{}   `json:"chat"`
		Messages []map[string]interface{} `json:"messages"`
	}
	decodeBody(t, get, &body)
	assert.NotEmpty(t, body.Chat["id"])
	require.NotEmpty(t, body.Messages)
	assert.Equal(t, "user", body.Messages[0]["role"])
}

func TestGetChat_NoneExists(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/"+id+"/chat", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
