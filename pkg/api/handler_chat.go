package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/models"
	"github.com/plenumhq/plenum/pkg/queue"
)

// maxChatMessageLength caps a single follow-up question.
const maxChatMessageLength = 100_000

// SendChatMessageRequest is the HTTP request body for POST /deliberations/:id/chat.
type SendChatMessageRequest struct {
	Content string `json:"content"`
}

// SendChatMessageResponse is the HTTP response for POST /deliberations/:id/chat.
type SendChatMessageResponse struct {
	ChatID    string `json:"chat_id"`
	MessageID string `json:"message_id"`
}

// ChatDetailResponse is returned by GET /deliberations/:id/chat.
type ChatDetailResponse struct {
	Chat     *ent.Chat          `json:"chat"`
	Messages []*ent.ChatMessage `json:"messages"`
}

// sendChatMessageHandler handles POST /api/v1/deliberations/:id/chat.
// Persists the user message and submits it for asynchronous processing by
// the chairman model.
func (s *Server) sendChatMessageHandler(c *gin.Context) {
	deliberationID := c.Param("id")

	if s.chats == nil || s.chatExecutor == nil {
		respondError(c, http.StatusServiceUnavailable, "chat is not available")
		return
	}

	del, err := s.deliberations.Get(c.Request.Context(), deliberationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if reason := chatAvailability(del.Status); reason != "" {
		respondError(c, http.StatusBadRequest, reason)
		return
	}

	var req SendChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		respondError(c, http.StatusBadRequest, "content is required")
		return
	}
	if len(req.Content) > maxChatMessageLength {
		respondError(c, http.StatusBadRequest, "content exceeds maximum length of 100,000 characters")
		return
	}

	author := extractAuthor(c)

	chatObj, _, err := s.chats.EnsureChat(c.Request.Context(), deliberationID, author)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	msg, err := s.chats.AppendUserMessage(c.Request.Context(), models.AddChatMessageRequest{
		ChatID:  chatObj.ID,
		Content: req.Content,
		Author:  author,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	s.publishUserChatMessage(c, deliberationID, chatObj.ID, msg, author)

	err = s.chatExecutor.Submit(c.Request.Context(), queue.ChatTurnInput{
		Chat:         chatObj,
		Message:      msg,
		Deliberation: del,
	})
	if err != nil {
		// The persisted message would never be answered; drop it so the user
		// can resubmit.
		if delErr := s.chats.DeleteMessage(c.Request.Context(), msg.ID); delErr != nil {
			slog.Warn("Failed to clean up rejected chat message",
				"message_id", msg.ID, "error", delErr)
		}
		respondChatExecutorError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, &SendChatMessageResponse{
		ChatID:    chatObj.ID,
		MessageID: msg.ID,
	})
}

// getChatHandler handles GET /api/v1/deliberations/:id/chat.
func (s *Server) getChatHandler(c *gin.Context) {
	deliberationID := c.Param("id")

	chatObj, err := s.chats.GetChatByDeliberationID(c.Request.Context(), deliberationID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if chatObj == nil {
		respondError(c, http.StatusNotFound, "no chat exists for this deliberation")
		return
	}

	messages, err := s.chats.ListMessages(c.Request.Context(), chatObj.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ChatDetailResponse{Chat: chatObj, Messages: messages})
}

// chatAvailability checks whether a follow-up chat can run for a
// deliberation in the given state. Returns an empty string when available.
func chatAvailability(status deliberation.Status) string {
	switch status {
	case deliberation.StatusCompleted, deliberation.StatusFailed, deliberation.StatusTimedOut:
		return ""
	case deliberation.StatusPending, deliberation.StatusInProgress:
		return "chat is not available while the deliberation is still processing"
	case deliberation.StatusCancelling:
		return "chat is not available while the deliberation is being cancelled"
	case deliberation.StatusCancelled:
		return "chat is not available for cancelled deliberations"
	default:
		return "chat is not available for deliberations in this state"
	}
}

// respondChatExecutorError maps chat executor errors to HTTP responses.
func respondChatExecutorError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, queue.ErrChatTurnActive):
		respondError(c, http.StatusConflict, "a chat response is already being generated")
	case errors.Is(err, queue.ErrShuttingDown):
		respondError(c, http.StatusServiceUnavailable, "service is shutting down")
	case errors.Is(err, queue.ErrNoChairmanModel):
		respondError(c, http.StatusBadRequest, "this deliberation ran without a chairman model")
	default:
		respondError(c, http.StatusInternalServerError, "failed to process chat message")
	}
}

// publishUserChatMessage publishes the chat.message event for a just-added
// user message. Failures are logged, never surfaced to the caller.
func (s *Server) publishUserChatMessage(c *gin.Context, deliberationID, chatID string, msg *ent.ChatMessage, author string) {
	if s.publisher == nil {
		return
	}
	payload := events.ChatMessagePayload{
		BasePayload: events.NewBasePayload(events.EventTypeChatMessage, deliberationID),
		ChatID:      chatID,
		MessageID:   msg.ID,
		Role:        chatmessage.RoleUser,
		Content:     msg.Content,
		Author:      author,
	}
	if err := s.publisher.PublishChatMessage(c.Request.Context(), payload); err != nil {
		slog.Warn("Failed to publish chat message event",
			"deliberation_id", deliberationID, "chat_id", chatID, "error", err)
	}
}
