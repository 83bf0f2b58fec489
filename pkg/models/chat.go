package models

import "github.com/plenumhq/plenum/ent"

// CreateChatRequest contains fields for creating a chat
type CreateChatRequest struct {
	DeliberationID string `json:"deliberation_id"`
	CreatedBy      string `json:"created_by"`
}

// AddChatMessageRequest contains fields for adding a chat message
type AddChatMessageRequest struct {
	ChatID  string `json:"chat_id"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// ChatResponse wraps a Chat with optional loaded edges
type ChatResponse struct {
	*ent.Chat
}
