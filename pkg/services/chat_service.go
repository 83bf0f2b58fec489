// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/chat"
	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/pkg/models"
)

// ChatService manages follow-up chat conversations
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// EnsureChat returns the single chat bound to a deliberation, creating it
// on first use. Returns (chat, created, error) where created indicates
// whether a new chat was created.
func (s *ChatService) EnsureChat(httpCtx context.Context, deliberationID, author string) (*ent.Chat, bool, error) {
	if deliberationID == "" {
		return nil, false, NewValidationError("deliberation_id", "required")
	}
	if author == "" {
		return nil, false, NewValidationError("author", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	// Try to find existing chat
	existing, err := s.client.Chat.Query().
		Where(chat.DeliberationIDEQ(deliberationID)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query chat: %w", err)
	}

	// No chat exists; verify the deliberation before creating one
	if _, err := s.client.Deliberation.Get(ctx, deliberationID); err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get deliberation: %w", err)
	}

	chatObj, err := s.client.Chat.Create().
		SetID(newID("chat")).
		SetDeliberationID(deliberationID).
		SetCreatedAt(time.Now()).
		SetCreatedBy(author).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: another request created the chat first, fetch it
			existing, queryErr := s.client.Chat.Query().
				Where(chat.DeliberationIDEQ(deliberationID)).
				Only(ctx)
			if queryErr != nil {
				return nil, false, fmt.Errorf("failed to query chat after constraint error: %w", queryErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create chat: %w", err)
	}

	return chatObj, true, nil
}

// AppendUserMessage adds a user message to the chat
func (s *ChatService) AppendUserMessage(httpCtx context.Context, req models.AddChatMessageRequest) (*ent.ChatMessage, error) {
	// Validate input
	if req.ChatID == "" {
		return nil, NewValidationError("chat_id", "required")
	}
	if req.Content == "" {
		return nil, NewValidationError("content", "required")
	}
	if req.Author == "" {
		return nil, NewValidationError("author", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	// Verify chat exists before creating message
	if _, err := s.client.Chat.Get(ctx, req.ChatID); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to verify chat existence: %w", err)
	}

	msg, err := s.client.ChatMessage.Create().
		SetID(newID("msg")).
		SetChatID(req.ChatID).
		SetRole(chatmessage.RoleUser).
		SetContent(req.Content).
		SetAuthor(req.Author).
		SetCreatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add chat message: %w", err)
	}

	return msg, nil
}

// AppendAssistantMessage records a chairman reply on the chat
func (s *ChatService) AppendAssistantMessage(httpCtx context.Context, chatID, content string, tokensUsed int) (*ent.ChatMessage, error) {
	if chatID == "" {
		return nil, NewValidationError("chat_id", "required")
	}
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ChatMessage.Create().
		SetID(newID("msg")).
		SetChatID(chatID).
		SetRole(chatmessage.RoleAssistant).
		SetContent(content).
		SetCreatedAt(time.Now())
	if tokensUsed > 0 {
		builder.SetTokensUsed(tokensUsed)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to add assistant message: %w", err)
	}

	return msg, nil
}

// DeleteMessage removes a chat message by ID.
// Used to clean up orphaned messages when async submission is rejected.
func (s *ChatService) DeleteMessage(httpCtx context.Context, messageID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()
	return s.client.ChatMessage.DeleteOneID(messageID).Exec(ctx)
}

// ListMessages returns a chat's messages, oldest first
func (s *ChatService) ListMessages(httpCtx context.Context, chatID string) ([]*ent.ChatMessage, error) {
	if chatID == "" {
		return nil, NewValidationError("chat_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	messages, err := s.client.ChatMessage.Query().
		Where(chatmessage.ChatIDEQ(chatID)).
		Order(ent.Asc(chatmessage.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	return messages, nil
}

// GetChatByDeliberationID returns the chat for a deliberation, or nil if
// none exists.
func (s *ChatService) GetChatByDeliberationID(httpCtx context.Context, deliberationID string) (*ent.Chat, error) {
	if deliberationID == "" {
		return nil, NewValidationError("deliberation_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	chatObj, err := s.client.Chat.Query().
		Where(chat.DeliberationIDEQ(deliberationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // no chat, not an error
		}
		return nil, fmt.Errorf("failed to get chat by deliberation: %w", err)
	}
	return chatObj, nil
}

// UpdateChatHeartbeat stamps the executing pod and refreshes the chat's
// heartbeat while a reply is being generated.
func (s *ChatService) UpdateChatHeartbeat(ctx context.Context, chatID, podID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Chat.UpdateOneID(chatID).
		SetPodID(podID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update chat heartbeat: %w", err)
	}
	return nil
}
