// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/services"
)

// Service periodically enforces retention policies:
//   - Soft-deletes deliberations past the retention window
//   - Removes orphaned Event rows past their TTL
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config        *config.RetentionConfig
	deliberations *services.DeliberationService
	events        *services.EventService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	deliberations *services.DeliberationService,
	events *services.EventService,
) *Service {
	return &Service{
		config:        cfg,
		deliberations: deliberations,
		events:        events,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"deliberation_retention_days", s.config.DeliberationRetentionDays,
		"event_ttl", s.config.EventTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.softDeleteOldDeliberations(ctx)
	s.cleanupOrphanedEvents(ctx)
}

// The workers use detached contexts for the actual deletes so a shutdown
// mid-cycle never leaves a half-applied retention pass.
func (s *Service) softDeleteOldDeliberations(_ context.Context) {
	count, err := s.deliberations.SoftDeleteOld(context.Background(), s.config.DeliberationRetentionDays)
	if err != nil {
		slog.Error("Retention: soft-delete deliberations failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: soft-deleted old deliberations", "count", count)
	}
}

func (s *Service) cleanupOrphanedEvents(_ context.Context) {
	count, err := s.events.CleanupOrphanedEvents(context.Background(), s.config.EventTTL)
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: cleaned up orphaned events", "count", count)
	}
}
