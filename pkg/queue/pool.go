package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/services"
	"github.com/plenumhq/plenum/pkg/slack"
)

// WorkerPool manages a pool of queue workers.
type WorkerPool struct {
	podID         string
	client        *ent.Client
	config        *config.QueueConfig
	executor      DeliberationExecutor
	deliberations *services.DeliberationService
	eventService  *services.EventService
	publisher     *events.EventPublisher
	slackService  *slack.Service
	workers       []*Worker
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup

	// Cancel registry: deliberation_id → cancel function
	activeDeliberations map[string]context.CancelFunc
	mu                  sync.RWMutex
	started             bool

	// Orphan detection state
	orphans orphanState
}

// NewWorkerPool creates a new worker pool. publisher and slackService may be
// nil (streaming / notifications disabled).
func NewWorkerPool(podID string, client *ent.Client, cfg *config.QueueConfig, executor DeliberationExecutor,
	deliberations *services.DeliberationService, eventService *services.EventService,
	publisher *events.EventPublisher, slackService *slack.Service) *WorkerPool {
	return &WorkerPool{
		podID:               podID,
		client:              client,
		config:              cfg,
		executor:            executor,
		deliberations:       deliberations,
		eventService:        eventService,
		publisher:           publisher,
		slackService:        slackService,
		workers:             make([]*Worker, 0, cfg.WorkerCount),
		stopCh:              make(chan struct{}),
		activeDeliberations: make(map[string]context.CancelFunc),
	}
}

// Start spawns worker goroutines and the orphan detection background task.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "pod_id", p.podID, "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.client, p.config, p.executor,
			p.deliberations, p.eventService, p.publisher, p.slackService, p)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start orphan detection
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers finish their current deliberations before exiting (graceful shutdown).
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	active := p.getActiveDeliberationIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active deliberations to complete",
			"count", len(active),
			"deliberation_ids", active)
	}

	// Signal all workers to stop (they finish current deliberations)
	for _, worker := range p.workers {
		worker.Stop()
	}

	// Signal orphan detection to stop
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// RegisterDeliberation stores a cancel function for manual cancellation.
func (p *WorkerPool) RegisterDeliberation(deliberationID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeDeliberations[deliberationID] = cancel
}

// UnregisterDeliberation removes the cancel function when processing ends.
func (p *WorkerPool) UnregisterDeliberation(deliberationID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeDeliberations, deliberationID)
}

// CancelDeliberation triggers context cancellation for a deliberation running
// on this pod. Returns true if it was found and cancelled here.
func (p *WorkerPool) CancelDeliberation(deliberationID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeDeliberations[deliberationID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Deliberation.Query().
		Where(
			deliberation.StatusEQ(deliberation.StatusPending),
			deliberation.DeletedAtIsNil(),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID,
			"error", errQ)
	}

	activeDeliberations, errA := p.client.Deliberation.Query().
		Where(
			deliberation.StatusEQ(deliberation.StatusInProgress),
			deliberation.PodIDEQ(p.podID),
		).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active deliberations for health check",
			"pod_id", p.podID,
			"error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	// DB errors affect health status - if we can't reach the DB, we're not healthy
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeDeliberations <= p.config.MaxConcurrentDeliberations && dbHealthy

	p.orphans.mu.Lock()
	lastOrphanScan := p.orphans.lastOrphanScan
	orphansRecovered := p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else if errA != nil {
			dbError = fmt.Sprintf("active deliberations query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:           isHealthy,
		DBReachable:         dbHealthy,
		DBError:             dbError,
		PodID:               p.podID,
		ActiveWorkers:       activeWorkers,
		TotalWorkers:        len(p.workers),
		ActiveDeliberations: activeDeliberations,
		MaxConcurrent:       p.config.MaxConcurrentDeliberations,
		QueueDepth:          queueDepth,
		WorkerStats:         workerStats,
		LastOrphanScan:      lastOrphanScan,
		OrphansRecovered:    orphansRecovered,
	}
}

// getActiveDeliberationIDs returns IDs of currently processing deliberations (for logging).
func (p *WorkerPool) getActiveDeliberationIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeDeliberations))
	for id := range p.activeDeliberations {
		ids = append(ids, id)
	}
	return ids
}
