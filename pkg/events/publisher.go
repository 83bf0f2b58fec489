package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// EventPublisher publishes events for WebSocket delivery.
// Persistent events are stored in the events table then broadcast via NOTIFY.
// Transient events (review progress) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see payloads.go.
// Internally, payloads are marshaled to JSON and routed to the appropriate
// channel (derived from the deliberation id) via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishDeliberationStatus persists a status event to the deliberation
// channel and broadcasts a transient copy to the global deliberations
// channel. Both publishes are best-effort: if the persistent one fails, the
// transient one is still attempted. Returns the first error encountered.
func (p *EventPublisher) PublishDeliberationStatus(ctx context.Context, payload DeliberationStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DeliberationStatusPayload: %w", err)
	}

	deliberationID := payload.DeliberationID

	// Persist to the deliberation-specific channel
	var firstErr error
	if err := p.persistAndNotify(ctx, deliberationID, DeliberationChannel(deliberationID), payloadJSON); err != nil {
		slog.Warn("Failed to publish deliberation status to deliberation channel",
			"deliberation_id", deliberationID, "status", payload.Status, "error", err)
		firstErr = err
	}

	// Also broadcast to the global channel (transient, for the list page)
	if err := p.notifyOnly(ctx, GlobalDeliberationsChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish deliberation status to global channel",
			"deliberation_id", deliberationID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// PublishGenerationStatus persists and broadcasts a generation.status event.
// Used for per-role generation lifecycle transitions.
func (p *EventPublisher) PublishGenerationStatus(ctx context.Context, payload GenerationStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal GenerationStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.DeliberationID, DeliberationChannel(payload.DeliberationID), payloadJSON)
}

// PublishReviewProgress broadcasts a review.progress transient event (no DB
// persistence). High-frequency pairwise progress ticks — ephemeral, lost on
// disconnect.
func (p *EventPublisher) PublishReviewProgress(ctx context.Context, payload ReviewProgressPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ReviewProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, DeliberationChannel(payload.DeliberationID), payloadJSON)
}

// PublishSynthesisStatus persists and broadcasts a synthesis.status event.
func (p *EventPublisher) PublishSynthesisStatus(ctx context.Context, payload SynthesisStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal SynthesisStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.DeliberationID, DeliberationChannel(payload.DeliberationID), payloadJSON)
}

// PublishChatMessage persists and broadcasts a chat.message event.
// Used for both user questions and chairman replies.
func (p *EventPublisher) PublishChatMessage(ctx context.Context, payload ChatMessagePayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ChatMessagePayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.DeliberationID, DeliberationChannel(payload.DeliberationID), payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and broadcasts
// via NOTIFY in a single transaction (pg_notify is transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, deliberationID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (deliberation_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING event_id`,
		deliberationID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for catchup tracking.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for NOTIFY
// delivery and applies truncation if the result exceeds PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the full
// JSON payload bytes, extracting only the routing fields the client needs
// to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type           string `json:"type"`
		DeliberationID string `json:"deliberation_id"`
		DBEventID      *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":            routing.Type,
		"deliberation_id": routing.DeliberationID,
		"truncated":       true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
