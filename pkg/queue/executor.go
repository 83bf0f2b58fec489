package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/council"
	"github.com/plenumhq/plenum/pkg/events"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/services"
)

// RealDeliberationExecutor runs a claimed deliberation through the council
// engine and persists the full output in one transaction.
type RealDeliberationExecutor struct {
	cfg           *config.Config
	provider      llm.Provider
	deliberations *services.DeliberationService
	publisher     *events.EventPublisher
	keyStash      *APIKeyStash
	logger        *slog.Logger
}

// NewRealDeliberationExecutor creates the production executor.
// publisher may be nil (streaming disabled); keyStash may be nil (no
// per-request key overrides).
func NewRealDeliberationExecutor(cfg *config.Config, provider llm.Provider,
	deliberations *services.DeliberationService, publisher *events.EventPublisher,
	keyStash *APIKeyStash) *RealDeliberationExecutor {
	return &RealDeliberationExecutor{
		cfg:           cfg,
		provider:      provider,
		deliberations: deliberations,
		publisher:     publisher,
		keyStash:      keyStash,
		logger:        slog.Default().With("component", "executor"),
	}
}

// Execute reconstructs the run from its snapshots, resolves the provider,
// runs the engine with an event-publishing observer, and writes the terminal
// state plus answers, verdicts, score sets and synthesis atomically.
func (e *RealDeliberationExecutor) Execute(ctx context.Context, del *ent.Deliberation) *ExecutionResult {
	log := e.logger.With("deliberation_id", del.ID)
	defer func() {
		if e.keyStash != nil {
			e.keyStash.Remove(del.ID)
		}
	}()

	roles, err := decodeRoles(del.Roles)
	if err != nil {
		return e.fail(del.ID, fmt.Errorf("invalid roles snapshot: %w", err))
	}
	opts, err := decodeOptions(del.Options)
	if err != nil {
		return e.fail(del.ID, fmt.Errorf("invalid options snapshot: %w", err))
	}

	provider, release := e.resolveProvider(del.ID)
	defer release()

	observer := newEventObserver(e.publisher, del.ID, roles, opts.ChairmanModel)
	engine := council.New(provider, council.Config{
		BootstrapRounds: e.cfg.Defaults.BootstrapRounds,
		BootstrapSeed:   e.cfg.Defaults.BootstrapSeed,
		Deadline:        e.cfg.Defaults.DeliberationDeadline,
		Observer:        observer,
	})

	out, err := engine.Deliberate(ctx, del.Task, roles, opts)
	if err != nil {
		status := deliberation.StatusFailed
		switch {
		case errors.Is(err, council.ErrCancelled) && errors.Is(ctx.Err(), context.DeadlineExceeded):
			status = deliberation.StatusTimedOut
		case errors.Is(err, council.ErrCancelled):
			status = deliberation.StatusCancelled
		}
		log.Warn("Deliberation did not produce output", "status", status, "error", err)
		if perr := e.deliberations.CompleteInTx(ctx, del.ID, status, nil, err.Error()); perr != nil {
			log.Error("Failed to persist terminal state", "error", perr)
		}
		return &ExecutionResult{Status: status, Error: err}
	}

	observer.publishSynthesisOutcome(opts, out)

	// A cancel request that arrived too late to preempt the run still wins
	// the terminal status; the output is persisted either way.
	status := deliberation.StatusCompleted
	if cur, gerr := e.deliberations.Get(context.Background(), del.ID); gerr == nil &&
		cur.Status == deliberation.StatusCancelling {
		status = deliberation.StatusCancelled
	}

	if perr := e.deliberations.CompleteInTx(ctx, del.ID, status, out, ""); perr != nil {
		log.Error("Failed to persist deliberation output", "error", perr)
		ferr := fmt.Errorf("persisting output: %w", perr)
		if uerr := e.deliberations.UpdateStatus(context.Background(), del.ID, deliberation.StatusFailed, ferr.Error()); uerr != nil {
			log.Error("Failed to write failed status after persist error", "error", uerr)
		}
		return &ExecutionResult{Status: deliberation.StatusFailed, Error: ferr}
	}

	return &ExecutionResult{Status: status, Synthesis: out.Synthesis}
}

// fail persists a failed terminal state for errors that precede engine
// execution (corrupt snapshots).
func (e *RealDeliberationExecutor) fail(deliberationID string, err error) *ExecutionResult {
	e.logger.Error("Deliberation failed before execution", "deliberation_id", deliberationID, "error", err)
	if perr := e.deliberations.CompleteInTx(context.Background(), deliberationID, deliberation.StatusFailed, nil, err.Error()); perr != nil {
		e.logger.Error("Failed to persist failure", "deliberation_id", deliberationID, "error", perr)
	}
	return &ExecutionResult{Status: deliberation.StatusFailed, Error: err}
}

// resolveProvider returns the provider for this run. When the caller supplied
// an API key at creation time and the configured provider is an OpenRouter
// gateway, a per-run provider authenticated with that key is built; the
// release func closes it. A stash miss (including after a pod restart) falls
// back to the shared provider.
func (e *RealDeliberationExecutor) resolveProvider(deliberationID string) (llm.Provider, func()) {
	if e.keyStash == nil {
		return e.provider, func() {}
	}
	key, ok := e.keyStash.Get(deliberationID)
	if !ok {
		return e.provider, func() {}
	}

	pc, err := e.cfg.GetLLMProvider(e.cfg.Defaults.LLMProvider)
	if err != nil || pc.Type != config.LLMProviderTypeOpenRouter {
		e.logger.Warn("Ignoring caller API key: provider does not support key override",
			"deliberation_id", deliberationID)
		return e.provider, func() {}
	}

	override := llm.Limit(llm.NewOpenRouter(llm.OpenRouterConfig{
		BaseURL: pc.BaseURL,
		APIKey:  key,
		Timeout: pc.Timeout,
		Referer: pc.Referer,
		Title:   pc.Title,
	}), pc.MaxConcurrent)
	return override, func() { override.Close() }
}

// decodeRoles rebuilds the engine role list from the creation-time snapshot.
func decodeRoles(snapshot []map[string]interface{}) ([]council.Role, error) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	var roles []council.Role
	if err := json.Unmarshal(raw, &roles); err != nil {
		return nil, err
	}
	return roles, nil
}

// decodeOptions rebuilds the engine options from the creation-time snapshot.
func decodeOptions(snapshot map[string]interface{}) (council.Options, error) {
	var opts council.Options
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return opts, err
	}
	if err := json.Unmarshal(raw, &opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// eventObserver bridges engine progress callbacks to persisted WebSocket
// events. Publishes are bounded by a short per-call timeout and fail open.
type eventObserver struct {
	publisher      *events.EventPublisher
	deliberationID string
	roles          []council.Role
	roleIndex      map[string]int
	chairmanModel  string

	synthesisSeen bool
}

const observerPublishTimeout = 5 * time.Second

func newEventObserver(publisher *events.EventPublisher, deliberationID string, roles []council.Role, chairmanModel string) *eventObserver {
	idx := make(map[string]int, len(roles))
	for i, r := range roles {
		idx[r.Name] = i
	}
	return &eventObserver{
		publisher:      publisher,
		deliberationID: deliberationID,
		roles:          roles,
		roleIndex:      idx,
		chairmanModel:  chairmanModel,
	}
}

// GenerationStarted publishes a started event for every role seat.
func (o *eventObserver) GenerationStarted(int) {
	if o.publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), observerPublishTimeout)
	defer cancel()
	for i, r := range o.roles {
		payload := events.GenerationStatusPayload{
			BasePayload: events.NewBasePayload(events.EventTypeGenerationStatus, o.deliberationID),
			Role:        r.Name,
			RoleIndex:   i,
			Model:       r.Model,
			Status:      events.StageStatusStarted,
		}
		if err := o.publisher.PublishGenerationStatus(ctx, payload); err != nil {
			slog.Warn("Failed to publish generation started",
				"deliberation_id", o.deliberationID, "role", r.Name, "error", err)
		}
	}
}

// GenerationCompleted publishes the terminal event for one role seat.
func (o *eventObserver) GenerationCompleted(a council.Answer) {
	if o.publisher == nil {
		return
	}
	status := events.StageStatusCompleted
	if !a.Success {
		status = events.StageStatusFailed
	}
	payload := events.GenerationStatusPayload{
		BasePayload: events.NewBasePayload(events.EventTypeGenerationStatus, o.deliberationID),
		Role:        a.Role,
		RoleIndex:   o.roleIndex[a.Role],
		Model:       a.Model,
		Status:      status,
		TokensUsed:  a.TokensUsed,
		LatencyMS:   a.LatencyMS,
		Error:       a.Error,
	}
	ctx, cancel := context.WithTimeout(context.Background(), observerPublishTimeout)
	defer cancel()
	if err := o.publisher.PublishGenerationStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish generation status",
			"deliberation_id", o.deliberationID, "role", a.Role, "error", err)
	}
}

// ReviewProgress publishes a transient done/total tick.
func (o *eventObserver) ReviewProgress(done, total int) {
	if o.publisher == nil {
		return
	}
	payload := events.ReviewProgressPayload{
		BasePayload: events.NewBasePayload(events.EventTypeReviewProgress, o.deliberationID),
		Done:        done,
		Total:       total,
	}
	ctx, cancel := context.WithTimeout(context.Background(), observerPublishTimeout)
	defer cancel()
	if err := o.publisher.PublishReviewProgress(ctx, payload); err != nil {
		slog.Warn("Failed to publish review progress",
			"deliberation_id", o.deliberationID, "error", err)
	}
}

// SynthesisCompleted publishes a completed synthesis event.
func (o *eventObserver) SynthesisCompleted(string) {
	o.synthesisSeen = true
	o.publishSynthesis(events.StageStatusCompleted)
}

// publishSynthesisOutcome covers the terminal synthesis states the engine has
// no callback for: skipped when the output mode never asked for one, failed
// when the chairman call produced nothing.
func (o *eventObserver) publishSynthesisOutcome(opts council.Options, out *council.Output) {
	switch {
	case !opts.OutputMode.WantsSynthesis():
		o.publishSynthesis(events.StageStatusSkipped)
	case out != nil && out.Synthesis == "" && !o.synthesisSeen:
		o.publishSynthesis(events.StageStatusFailed)
	}
}

func (o *eventObserver) publishSynthesis(status string) {
	if o.publisher == nil {
		return
	}
	payload := events.SynthesisStatusPayload{
		BasePayload: events.NewBasePayload(events.EventTypeSynthesisStatus, o.deliberationID),
		Status:      status,
	}
	if status != events.StageStatusSkipped {
		payload.ChairmanModel = o.chairmanModel
	}
	ctx, cancel := context.WithTimeout(context.Background(), observerPublishTimeout)
	defer cancel()
	if err := o.publisher.PublishSynthesisStatus(ctx, payload); err != nil {
		slog.Warn("Failed to publish synthesis status",
			"deliberation_id", o.deliberationID, "status", status, "error", err)
	}
}
