package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/events"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned deliberations.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds in-flight deliberations with stale heartbeats
// and moves them to a terminal state.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	orphans, err := p.deliberations.FindOrphaned(ctx, p.config.OrphanThreshold)
	if err != nil {
		return fmt.Errorf("failed to query orphaned deliberations: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned deliberations", "count", len(orphans))

	recovered := 0
	for _, del := range orphans {
		if err := p.recoverOrphan(ctx, del); err != nil {
			slog.Error("Failed to recover orphaned deliberation",
				"deliberation_id", del.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphan marks a single orphaned deliberation terminal: timed_out for
// in_progress rows, cancelled for rows a user had already asked to cancel.
func (p *WorkerPool) recoverOrphan(ctx context.Context, del *ent.Deliberation) error {
	lastHeartbeat := "unknown"
	if del.LastInteractionAt != nil {
		lastHeartbeat = del.LastInteractionAt.Format(time.RFC3339)
	}

	podID := "unknown"
	if del.PodID != nil {
		podID = *del.PodID
	}

	status := deliberation.StatusTimedOut
	if del.Status == deliberation.StatusCancelling {
		status = deliberation.StatusCancelled
	}
	errMsg := fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)

	if err := p.deliberations.UpdateStatus(ctx, del.ID, status, errMsg); err != nil {
		return fmt.Errorf("failed to mark deliberation %s: %w", status, err)
	}

	if p.publisher != nil {
		payload := events.DeliberationStatusPayload{
			BasePayload:  events.NewBasePayload(events.EventTypeDeliberationStatus, del.ID),
			Status:       status,
			ErrorMessage: errMsg,
		}
		if err := p.publisher.PublishDeliberationStatus(ctx, payload); err != nil {
			slog.Warn("Failed to publish orphan recovery status",
				"deliberation_id", del.ID, "error", err)
		}
	}

	slog.Warn("Orphaned deliberation recovered",
		"deliberation_id", del.ID,
		"old_pod_id", podID,
		"status", status,
		"last_heartbeat", lastHeartbeat)
	return nil
}
