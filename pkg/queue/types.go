// Package queue provides the deliberation queue: worker pool, claiming,
// execution, orphan recovery, and follow-up chat turns.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
)

// Sentinel errors for queue operations.
var (
	// ErrNoDeliberationsAvailable indicates no pending deliberations are in the queue.
	ErrNoDeliberationsAvailable = errors.New("no deliberations available")

	// ErrAtCapacity indicates the global concurrent deliberation limit has been reached.
	ErrAtCapacity = errors.New("at capacity")

	// ErrShuttingDown indicates the executor is draining and rejects new work.
	ErrShuttingDown = errors.New("shutting down")

	// ErrChatTurnActive indicates a chat already has a turn in flight.
	ErrChatTurnActive = errors.New("chat turn already active")
)

// DeliberationExecutor runs one claimed deliberation to completion.
//
// The executor owns persistence: it writes the terminal status together with
// answers, verdicts, score sets, and synthesis in a single transaction before
// returning. The worker only handles claiming, heartbeat, status events,
// notifications, and event cleanup — plus a nil-result guard, which is the
// one case where the worker writes the terminal status itself.
type DeliberationExecutor interface {
	Execute(ctx context.Context, del *ent.Deliberation) *ExecutionResult
}

// ExecutionResult is lightweight — just the terminal state. The full output
// was already written to the database by the executor.
type ExecutionResult struct {
	Status    deliberation.Status // completed, failed, timed_out, cancelled
	Synthesis string              // Chairman synthesis (if any)
	Error     error               // Error details (if failed/timed_out/cancelled)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy           bool           `json:"is_healthy"`
	DBReachable         bool           `json:"db_reachable"`
	DBError             string         `json:"db_error,omitempty"`
	PodID               string         `json:"pod_id"`
	ActiveWorkers       int            `json:"active_workers"`
	TotalWorkers        int            `json:"total_workers"`
	ActiveDeliberations int            `json:"active_deliberations"`
	MaxConcurrent       int            `json:"max_concurrent"`
	QueueDepth          int            `json:"queue_depth"`
	WorkerStats         []WorkerHealth `json:"worker_stats"`
	LastOrphanScan      time.Time      `json:"last_orphan_scan"`
	OrphansRecovered    int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID                     string    `json:"id"`
	Status                 string    `json:"status"` // "idle" or "working"
	CurrentDeliberationID  string    `json:"current_deliberation_id,omitempty"`
	DeliberationsProcessed int       `json:"deliberations_processed"`
	LastActivity           time.Time `json:"last_activity"`
}
