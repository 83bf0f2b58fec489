package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/chatmessage"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/services"
)

// ErrNoChairmanModel is returned by Submit when the deliberation ran without
// a chairman; follow-up chat has no model to answer with.
var ErrNoChairmanModel = errors.New("deliberation has no chairman model")

// chatTurnTimeout bounds one follow-up reply end to end.
const chatTurnTimeout = 5 * time.Minute

// ChatTurnInput groups the parameters for one follow-up chat turn.
type ChatTurnInput struct {
	Chat         *ent.Chat
	Message      *ent.ChatMessage
	Deliberation *ent.Deliberation
}

// ChatExecutor produces follow-up chat replies asynchronously. The chairman
// model answers with the persisted deliberation digest as context. One turn
// at a time per chat; turns are cancellable by deliberation id and drained
// on Stop.
type ChatExecutor struct {
	podID         string
	provider      llm.Provider
	deliberations *services.DeliberationService
	chats         *services.ChatService
	publisher     *events.EventPublisher

	mu             sync.RWMutex
	active         map[string]context.CancelFunc // chatID → cancel
	byDeliberation map[string]string             // deliberationID → chatID
	wg             sync.WaitGroup
	stopped        bool
}

// NewChatExecutor creates a chat executor. publisher may be nil.
func NewChatExecutor(podID string, provider llm.Provider,
	deliberations *services.DeliberationService, chats *services.ChatService,
	publisher *events.EventPublisher) *ChatExecutor {
	return &ChatExecutor{
		podID:          podID,
		provider:       provider,
		deliberations:  deliberations,
		chats:          chats,
		publisher:      publisher,
		active:         make(map[string]context.CancelFunc),
		byDeliberation: make(map[string]string),
	}
}

// Submit validates the one-at-a-time constraint and launches asynchronous
// turn execution. The user message must already be persisted.
func (e *ChatExecutor) Submit(_ context.Context, input ChatTurnInput) error {
	if chairmanModel(input.Deliberation) == "" {
		return ErrNoChairmanModel
	}

	// Fast-fail if already stopped
	e.mu.RLock()
	if e.stopped {
		e.mu.RUnlock()
		return ErrShuttingDown
	}
	e.mu.RUnlock()

	// Atomically check stopped + one-at-a-time + register. Holding the lock
	// through wg.Add(1) ensures Stop cannot complete wg.Wait() before this
	// goroutine is tracked.
	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		return ErrShuttingDown
	}
	if _, busy := e.active[input.Chat.ID]; busy {
		e.mu.Unlock()
		return ErrChatTurnActive
	}
	turnCtx, cancel := context.WithTimeout(context.Background(), chatTurnTimeout)
	e.active[input.Chat.ID] = cancel
	e.byDeliberation[input.Deliberation.ID] = input.Chat.ID
	e.wg.Add(1)
	e.mu.Unlock()

	// Detached context: the turn is not tied to the HTTP request lifecycle.
	go func() {
		defer e.wg.Done()
		defer cancel()
		defer e.unregister(input.Chat.ID, input.Deliberation.ID)
		e.executeTurn(turnCtx, input)
	}()

	return nil
}

// CancelByDeliberationID cancels an in-flight chat turn for a deliberation.
// Returns true if a turn was found and cancelled on this pod.
func (e *ChatExecutor) CancelByDeliberationID(deliberationID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	chatID, ok := e.byDeliberation[deliberationID]
	if !ok {
		return false
	}
	if cancel, ok := e.active[chatID]; ok {
		cancel()
		return true
	}
	return false
}

// Stop rejects new submissions, cancels in-flight turns, and waits for their
// goroutines to drain.
func (e *ChatExecutor) Stop() {
	e.mu.Lock()
	e.stopped = true
	for _, cancel := range e.active {
		cancel()
	}
	e.mu.Unlock()
	e.wg.Wait()
	slog.Info("Chat executor stopped")
}

func (e *ChatExecutor) unregister(chatID, deliberationID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.active, chatID)
	delete(e.byDeliberation, deliberationID)
}

// executeTurn runs one chairman completion and persists the reply.
func (e *ChatExecutor) executeTurn(ctx context.Context, input ChatTurnInput) {
	logger := slog.With(
		"component", "chat-executor",
		"deliberation_id", input.Deliberation.ID,
		"chat_id", input.Chat.ID,
		"message_id", input.Message.ID,
	)
	logger.Info("Chat turn started")

	if err := e.chats.UpdateChatHeartbeat(ctx, input.Chat.ID, e.podID); err != nil {
		logger.Warn("Failed to update chat heartbeat", "error", err)
	}

	// Load the full deliberation for the digest: answers, scores, synthesis.
	del, err := e.deliberations.GetDetail(ctx, input.Deliberation.ID)
	if err != nil {
		logger.Error("Failed to load deliberation for chat context", "error", err)
		return
	}

	history, err := e.chats.ListMessages(ctx, input.Chat.ID)
	if err != nil {
		logger.Error("Failed to load chat history", "error", err)
		return
	}

	completion, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:  chairmanModel(del),
		System: buildChatSystemPrompt(del),
		User:   buildChatTranscript(history),
	})
	if err != nil {
		logger.Error("Chairman chat completion failed", "error", err)
		return
	}

	msg, err := e.chats.AppendAssistantMessage(ctx, input.Chat.ID, completion.Text, completion.TokensUsed)
	if err != nil {
		logger.Error("Failed to persist assistant reply", "error", err)
		return
	}

	e.publishChatMessage(del.ID, input.Chat.ID, msg)
	logger.Info("Chat turn complete", "tokens_used", completion.TokensUsed)
}

// publishChatMessage publishes a chat.message event for the assistant reply.
func (e *ChatExecutor) publishChatMessage(deliberationID, chatID string, msg *ent.ChatMessage) {
	if e.publisher == nil {
		return
	}
	payload := events.ChatMessagePayload{
		BasePayload: events.NewBasePayload(events.EventTypeChatMessage, deliberationID),
		ChatID:      chatID,
		MessageID:   msg.ID,
		Role:        chatmessage.RoleAssistant,
		Content:     msg.Content,
	}
	ctx, cancel := context.WithTimeout(context.Background(), observerPublishTimeout)
	defer cancel()
	if err := e.publisher.PublishChatMessage(ctx, payload); err != nil {
		slog.Warn("Failed to publish chat message",
			"deliberation_id", deliberationID, "chat_id", chatID, "error", err)
	}
}

// chairmanModel returns the model that answers follow-up questions, or ""
// when the run had no chairman.
func chairmanModel(del *ent.Deliberation) string {
	if del.ChairmanModel != nil && *del.ChairmanModel != "" {
		return *del.ChairmanModel
	}
	if m, ok := del.Options["chairman_model"].(string); ok {
		return m
	}
	return ""
}

// buildChatSystemPrompt renders the deliberation digest the chairman answers
// from: the task, each role's answer, the ranking scores, and the synthesis.
func buildChatSystemPrompt(del *ent.Deliberation) string {
	var b strings.Builder
	b.WriteString("You are the chairman of a council that has deliberated on the following task. ")
	b.WriteString("Answer follow-up questions grounded in the material below. ")
	b.WriteString("When perspectives disagree, say so rather than papering over it.\n\n")

	b.WriteString("## Task\n")
	b.WriteString(del.Task)
	b.WriteString("\n\n## Council answers\n")
	for _, a := range del.Edges.Answers {
		if !a.Success {
			continue
		}
		fmt.Fprintf(&b, "\n### %s (%s)\n%s\n", a.Role, a.Model, a.Content)
	}

	if len(del.Edges.ScoreSets) > 0 {
		b.WriteString("\n## Peer-review rankings\n")
		for _, ss := range del.Edges.ScoreSets {
			fmt.Fprintf(&b, "\n%s:\n", ss.Method)
			names := make([]string, 0, len(ss.Scores))
			for name := range ss.Scores {
				names = append(names, name)
			}
			sort.Slice(names, func(i, j int) bool { return ss.Scores[names[i]] > ss.Scores[names[j]] })
			for _, name := range names {
				fmt.Fprintf(&b, "  %s: %.3f\n", name, ss.Scores[name])
			}
		}
	}

	if del.Synthesis != nil && *del.Synthesis != "" {
		b.WriteString("\n## Synthesis\n")
		b.WriteString(*del.Synthesis)
		b.WriteString("\n")
	}

	return b.String()
}

// buildChatTranscript folds the chat history, oldest first, into a single
// user prompt ending with the question awaiting an answer.
func buildChatTranscript(history []*ent.ChatMessage) string {
	var b strings.Builder
	for _, m := range history {
		switch m.Role {
		case chatmessage.RoleUser:
			fmt.Fprintf(&b, "User: %s\n\n", m.Content)
		case chatmessage.RoleAssistant:
			fmt.Fprintf(&b, "Chairman: %s\n\n", m.Content)
		}
	}
	b.WriteString("Chairman:")
	return b.String()
}
