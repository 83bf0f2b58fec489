package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/services"
	"github.com/plenumhq/plenum/pkg/slack"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes deliberations.
type Worker struct {
	id            string
	podID         string
	client        *ent.Client
	config        *config.QueueConfig
	executor      DeliberationExecutor
	deliberations *services.DeliberationService
	eventService  *services.EventService
	publisher     *events.EventPublisher
	slackService  *slack.Service
	pool          DeliberationRegistry
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup

	// Health tracking
	mu                     sync.RWMutex
	status                 WorkerStatus
	currentDeliberationID  string
	deliberationsProcessed int
	lastActivity           time.Time
}

// DeliberationRegistry is the subset of WorkerPool used by Worker for
// cancel-func registration.
type DeliberationRegistry interface {
	RegisterDeliberation(deliberationID string, cancel context.CancelFunc)
	UnregisterDeliberation(deliberationID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (streaming disabled).
// slackService may be nil (Slack notifications disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor DeliberationExecutor,
	deliberations *services.DeliberationService, eventService *services.EventService,
	publisher *events.EventPublisher, slackService *slack.Service, pool DeliberationRegistry) *Worker {
	return &Worker{
		id:            id,
		podID:         podID,
		client:        client,
		config:        cfg,
		executor:      executor,
		deliberations: deliberations,
		eventService:  eventService,
		publisher:     publisher,
		slackService:  slackService,
		pool:          pool,
		stopCh:        make(chan struct{}),
		status:        WorkerStatusIdle,
		lastActivity:  time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                     w.id,
		Status:                 string(w.status),
		CurrentDeliberationID:  w.currentDeliberationID,
		DeliberationsProcessed: w.deliberationsProcessed,
		LastActivity:           w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoDeliberationsAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing deliberation", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a deliberation, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Deliberation.Query().
		Where(deliberation.StatusEQ(deliberation.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active deliberations: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentDeliberations {
		return ErrAtCapacity
	}

	// 2. Claim next deliberation (FOR UPDATE SKIP LOCKED, FIFO)
	del, err := w.deliberations.ClaimNextPending(ctx, w.podID)
	if err != nil {
		return fmt.Errorf("claiming deliberation: %w", err)
	}
	if del == nil {
		return ErrNoDeliberationsAvailable
	}

	log := slog.With("deliberation_id", del.ID, "worker_id", w.id)
	log.Info("Deliberation claimed")

	// Publish in_progress to the deliberation and global channels
	w.publishStatus(ctx, del.ID, deliberation.StatusInProgress, "")

	w.setStatus(WorkerStatusWorking, del.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create deliberation context with timeout
	delCtx, cancelDel := context.WithTimeout(ctx, w.config.DeliberationTimeout)
	defer cancelDel()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterDeliberation(del.ID, cancelDel)
	defer w.pool.UnregisterDeliberation(del.ID)

	// 5. Start heartbeat
	heartbeatCtx, cancelHeartbeat := context.WithCancel(delCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, del.ID)

	// 6. Execute. The executor owns terminal persistence (status + output in
	// one tx); the worker only nil-guards.
	result := w.executor.Execute(delCtx, del)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil. This
	// is the one path where the worker writes the terminal status itself.
	if result == nil {
		switch {
		case errors.Is(delCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status: deliberation.StatusTimedOut,
				Error:  fmt.Errorf("deliberation timed out after %v", w.config.DeliberationTimeout),
			}
		case errors.Is(delCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: deliberation.StatusCancelled,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: deliberation.StatusFailed,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}

		var errMsg string
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		if err := w.deliberations.UpdateStatus(context.Background(), del.ID, result.Status, errMsg); err != nil {
			log.Error("Failed to write terminal status for nil executor result", "error", err)
			return err
		}
	}

	// 7. Stop heartbeat
	cancelHeartbeat()

	// 8. Publish terminal status event (background context — delCtx may be cancelled)
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	w.publishStatus(context.Background(), del.ID, result.Status, errMsg)

	// 9. Send Slack terminal notification
	w.notifySlack(context.Background(), del, result)

	// 10. Cleanup event rows after a grace period (60s) so clients can still
	// catch up on final events before they are deleted.
	w.scheduleEventCleanup(del.ID)

	w.mu.Lock()
	w.deliberationsProcessed++
	w.mu.Unlock()

	log.Info("Deliberation processing complete", "status", result.Status)
	return nil
}

// runHeartbeat periodically refreshes last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, deliberationID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.deliberations.UpdateHeartbeat(ctx, deliberationID); err != nil {
				slog.Warn("Heartbeat update failed", "deliberation_id", deliberationID, "error", err)
			}
		}
	}
}

// publishStatus publishes a deliberation.status event. The publisher fans it
// out to the deliberation channel (persisted) and the global channel
// (transient). Non-blocking: errors are logged.
func (w *Worker) publishStatus(ctx context.Context, deliberationID string, status deliberation.Status, errorMessage string) {
	if w.publisher == nil {
		return
	}
	payload := events.DeliberationStatusPayload{
		BasePayload:  events.NewBasePayload(events.EventTypeDeliberationStatus, deliberationID),
		Status:       status,
		ErrorMessage: errorMessage,
	}
	if err := w.publisher.PublishDeliberationStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish deliberation status",
			"deliberation_id", deliberationID, "status", status, "error", err)
	}
}

// notifySlack sends the terminal Slack notification. Nil-safe and fail-open.
func (w *Worker) notifySlack(ctx context.Context, del *ent.Deliberation, result *ExecutionResult) {
	var errMsg string
	if result.Error != nil {
		errMsg = result.Error.Error()
	}
	w.slackService.NotifyDeliberationCompleted(ctx, slack.DeliberationCompletedInput{
		DeliberationID: del.ID,
		Task:           del.Task,
		Status:         string(result.Status),
		Synthesis:      result.Synthesis,
		ErrorMessage:   errMsg,
	})
}

// scheduleEventCleanup schedules deletion of the deliberation's event rows
// after a 60-second grace period, allowing WebSocket clients to catch up.
func (w *Worker) scheduleEventCleanup(deliberationID string) {
	time.AfterFunc(60*time.Second, func() {
		if _, err := w.eventService.CleanupDeliberationEvents(context.Background(), deliberationID); err != nil {
			slog.Warn("Failed to cleanup deliberation events after grace period",
				"deliberation_id", deliberationID, "error", err)
		}
	})
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, deliberationID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentDeliberationID = deliberationID
	w.lastActivity = time.Now()
}
