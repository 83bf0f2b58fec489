package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/answer"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/pkg/config"
	"github.com/plenumhq/plenum/pkg/council"
	"github.com/plenumhq/plenum/pkg/llm"
	"github.com/plenumhq/plenum/pkg/models"
)

// newID returns a prefixed identifier like "del_3f2c...".
func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()
}

// DeliberationService manages deliberation lifecycle
type DeliberationService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewDeliberationService creates a new DeliberationService
func NewDeliberationService(client *ent.Client, cfg *config.Config) *DeliberationService {
	return &DeliberationService{client: client, cfg: cfg}
}

// Create validates the request, resolves the council preset when one is
// named, snapshots the resolved roles and options, and persists the
// deliberation in pending state. The snapshot makes the run immune to later
// configuration edits.
func (s *DeliberationService) Create(httpCtx context.Context, req models.CreateDeliberationRequest) (*ent.Deliberation, error) {
	if req.Task == "" {
		return nil, NewValidationError("task", "required")
	}
	if req.Council != "" && len(req.Roles) > 0 {
		return nil, NewValidationError("council", "cannot combine a council preset with inline roles")
	}

	councilID := req.Council
	if councilID == "" && len(req.Roles) == 0 {
		councilID = s.cfg.Defaults.Council
	}

	var preset *config.CouncilConfig
	roles := req.Roles
	if councilID != "" {
		var err error
		preset, err = s.cfg.GetCouncil(councilID)
		if err != nil {
			return nil, NewValidationError("council", fmt.Sprintf("unknown council preset %q", councilID))
		}
		roles, err = s.resolvePresetRoles(preset)
		if err != nil {
			return nil, err
		}
	}

	if err := validateRoles(roles); err != nil {
		return nil, err
	}

	opts, err := s.resolveOptions(preset, req.Options)
	if err != nil {
		return nil, err
	}

	rolesSnapshot, err := toJSONSlice(roles)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot roles: %w", err)
	}
	optionsSnapshot, err := toJSONMap(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot options: %w", err)
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	id := req.DeliberationID
	if id == "" {
		id = newID("del")
	}

	builder := s.client.Deliberation.Create().
		SetID(id).
		SetTask(req.Task).
		SetStatus(deliberation.StatusPending).
		SetRoles(rolesSnapshot).
		SetOptions(optionsSnapshot).
		SetCreatedAt(time.Now())

	if councilID != "" {
		builder.SetCouncilID(councilID)
	}
	if opts.ChairmanModel != "" {
		builder.SetChairmanModel(opts.ChairmanModel)
	}
	if req.Author != "" {
		builder.SetAuthor(req.Author)
	}

	del, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create deliberation: %w", err)
	}

	return del, nil
}

// resolvePresetRoles expands a council preset's role names into full role
// definitions from the role registry.
func (s *DeliberationService) resolvePresetRoles(preset *config.CouncilConfig) ([]council.Role, error) {
	roles := make([]council.Role, 0, len(preset.Roles))
	for _, name := range preset.Roles {
		rc, err := s.cfg.GetRole(name)
		if err != nil {
			return nil, NewValidationError("roles", fmt.Sprintf("unknown role preset %q", name))
		}
		roles = append(roles, council.Role{
			Name:         name,
			SystemPrompt: rc.SystemPrompt,
			Model:        rc.Model,
			Sampling:     llm.SamplingFromConfig(rc.Sampling),
			Weight:       rc.Weight,
		})
	}
	return roles, nil
}

// resolveOptions layers option sources lowest to highest: engine defaults,
// system defaults, council preset, request overrides. The preset's chairman
// fills ChairmanModel unless the request names its own.
func (s *DeliberationService) resolveOptions(preset *config.CouncilConfig, reqOpts *models.DeliberationOptions) (council.Options, error) {
	opts := council.DefaultOptions()

	applyConfigOptions := func(oc *config.OptionsConfig) {
		if oc == nil {
			return
		}
		if oc.OutputMode != "" {
			opts.OutputMode = council.OutputMode(oc.OutputMode)
		}
		if oc.Anonymize != nil {
			opts.Anonymize = *oc.Anonymize
		}
		if oc.Review != nil {
			opts.Review = *oc.Review
		}
		if len(oc.Reviewers) > 0 {
			opts.Reviewers = append([]string(nil), oc.Reviewers...)
		}
		if oc.Aggregation != "" {
			opts.Aggregation = string(oc.Aggregation)
		}
	}

	applyConfigOptions(s.cfg.Defaults.Options)
	if preset != nil {
		applyConfigOptions(preset.Options)
		opts.ChairmanModel = preset.Chairman
	}

	if reqOpts != nil {
		if reqOpts.OutputMode != "" {
			opts.OutputMode = council.OutputMode(reqOpts.OutputMode)
		}
		if reqOpts.Anonymize != nil {
			opts.Anonymize = *reqOpts.Anonymize
		}
		if reqOpts.Review != nil {
			opts.Review = *reqOpts.Review
		}
		if len(reqOpts.Reviewers) > 0 {
			opts.Reviewers = append([]string(nil), reqOpts.Reviewers...)
		}
		if reqOpts.Aggregation != "" {
			opts.Aggregation = reqOpts.Aggregation
		}
		if reqOpts.ChairmanModel != "" {
			opts.ChairmanModel = reqOpts.ChairmanModel
		}
	}

	if !opts.OutputMode.Valid() {
		return opts, NewValidationError("options.output_mode", fmt.Sprintf("unknown output mode %q", opts.OutputMode))
	}
	if opts.OutputMode.WantsSynthesis() && opts.ChairmanModel == "" {
		return opts, NewValidationError("options.chairman_model", fmt.Sprintf("output mode %q requires a chairman model", opts.OutputMode))
	}
	return opts, nil
}

// validateRoles enforces the creation-time role contract, mirroring what the
// engine enforces at execution time so bad requests fail fast.
func validateRoles(roles []council.Role) error {
	if len(roles) < 2 {
		return NewValidationError("roles", fmt.Sprintf("need at least 2 roles, got %d", len(roles)))
	}
	seen := make(map[string]bool, len(roles))
	for i, r := range roles {
		if r.Name == "" {
			return NewValidationError("roles", fmt.Sprintf("role %d has no name", i))
		}
		if r.Model == "" {
			return NewValidationError("roles", fmt.Sprintf("role %q has no model", r.Name))
		}
		if seen[r.Name] {
			return NewValidationError("roles", fmt.Sprintf("duplicate role name %q", r.Name))
		}
		seen[r.Name] = true
	}
	return nil
}

// GetDetail retrieves a deliberation with answers, verdicts, score sets and
// chat loaded.
func (s *DeliberationService) GetDetail(ctx context.Context, deliberationID string) (*ent.Deliberation, error) {
	del, err := s.client.Deliberation.Query().
		Where(deliberation.IDEQ(deliberationID)).
		WithAnswers(func(q *ent.AnswerQuery) {
			q.Order(ent.Asc(answer.FieldRoleIndex))
		}).
		WithVerdicts().
		WithScoreSets().
		WithChat().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deliberation: %w", err)
	}
	return del, nil
}

// Get retrieves a deliberation without edges.
func (s *DeliberationService) Get(ctx context.Context, deliberationID string) (*ent.Deliberation, error) {
	del, err := s.client.Deliberation.Get(ctx, deliberationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deliberation: %w", err)
	}
	return del, nil
}

// List lists deliberations with filtering, search and pagination
func (s *DeliberationService) List(ctx context.Context, filters models.DeliberationFilters) (*models.DeliberationListResponse, error) {
	query := s.client.Deliberation.Query()

	// Apply filters
	if len(filters.Status) > 0 {
		statuses := make([]deliberation.Status, 0, len(filters.Status))
		for _, st := range filters.Status {
			statuses = append(statuses, deliberation.Status(st))
		}
		query = query.Where(deliberation.StatusIn(statuses...))
	}
	if filters.CouncilID != "" {
		query = query.Where(deliberation.CouncilIDEQ(filters.CouncilID))
	}
	if filters.Author != "" {
		query = query.Where(deliberation.AuthorEQ(filters.Author))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(deliberation.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(deliberation.CreatedAtLT(*filters.CreatedBefore))
	}
	if len(filters.Search) >= 3 {
		// Backed by the trigram GIN indexes on task and synthesis
		query = query.Where(deliberation.Or(
			deliberation.TaskContainsFold(filters.Search),
			deliberation.SynthesisContainsFold(filters.Search),
		))
	}
	if !filters.IncludeDeleted {
		query = query.Where(deliberation.DeletedAtIsNil())
	}

	// Count total
	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count deliberations: %w", err)
	}

	// Apply pagination
	limit := filters.Limit
	if limit <= 0 {
		limit = 20 // Default
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	order := sortOrder(filters)

	deliberations, err := query.
		Limit(limit).
		Offset(offset).
		Order(order).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliberations: %w", err)
	}

	return &models.DeliberationListResponse{
		Deliberations: deliberations,
		TotalCount:    totalCount,
		Limit:         limit,
		Offset:        offset,
	}, nil
}

// sortOrder maps the filter's sort field and direction onto an ent order
// function, defaulting to newest first.
func sortOrder(filters models.DeliberationFilters) deliberation.OrderOption {
	field := deliberation.FieldCreatedAt
	switch filters.SortBy {
	case "status":
		field = deliberation.FieldStatus
	case "council_id":
		field = deliberation.FieldCouncilID
	case "author":
		field = deliberation.FieldAuthor
	case "duration":
		field = deliberation.FieldDurationMs
	}
	if filters.SortOrder == "asc" {
		return ent.Asc(field)
	}
	return ent.Desc(field)
}

// ListActive returns non-terminal deliberations, newest first
func (s *DeliberationService) ListActive(ctx context.Context) ([]*ent.Deliberation, error) {
	deliberations, err := s.client.Deliberation.Query().
		Where(
			deliberation.StatusIn(
				deliberation.StatusPending,
				deliberation.StatusInProgress,
				deliberation.StatusCancelling,
			),
			deliberation.DeletedAtIsNil(),
		).
		Order(ent.Desc(deliberation.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active deliberations: %w", err)
	}
	return deliberations, nil
}

// Cancel requests cancellation. A pending deliberation is cancelled
// directly; an in-progress one is moved to cancelling and the running
// worker observes the transition. Anything else is ErrNotCancellable.
func (s *DeliberationService) Cancel(httpCtx context.Context, deliberationID string) (*ent.Deliberation, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	del, err := tx.Deliberation.Get(ctx, deliberationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deliberation: %w", err)
	}

	switch del.Status {
	case deliberation.StatusPending:
		del, err = tx.Deliberation.UpdateOne(del).
			SetStatus(deliberation.StatusCancelled).
			SetCompletedAt(time.Now()).
			SetLastInteractionAt(time.Now()).
			Save(ctx)
	case deliberation.StatusInProgress:
		del, err = tx.Deliberation.UpdateOne(del).
			SetStatus(deliberation.StatusCancelling).
			SetLastInteractionAt(time.Now()).
			Save(ctx)
	default:
		return nil, ErrNotCancellable
	}
	if err != nil {
		return nil, fmt.Errorf("failed to cancel deliberation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit cancel: %w", err)
	}

	return del, nil
}

// UpdateStatus updates a deliberation's status, stamping completed_at and
// duration on terminal transitions. errorMessage is recorded when non-empty.
func (s *DeliberationService) UpdateStatus(ctx context.Context, deliberationID string, status deliberation.Status, errorMessage string) error {
	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Deliberation.UpdateOneID(deliberationID).
		SetStatus(status).
		SetLastInteractionAt(time.Now())

	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}

	if isTerminal(status) {
		now := time.Now()
		update = update.SetCompletedAt(now)
		if del, err := s.client.Deliberation.Get(writeCtx, deliberationID); err == nil && del.StartedAt != nil {
			update = update.SetDurationMs(now.Sub(*del.StartedAt).Milliseconds())
		}
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update deliberation status: %w", err)
	}
	return nil
}

func isTerminal(status deliberation.Status) bool {
	switch status {
	case deliberation.StatusCompleted,
		deliberation.StatusFailed,
		deliberation.StatusCancelled,
		deliberation.StatusTimedOut:
		return true
	}
	return false
}

// ClaimNextPending atomically claims the oldest pending deliberation for
// this pod using FOR UPDATE SKIP LOCKED. Returns nil when nothing is pending.
func (s *DeliberationService) ClaimNextPending(ctx context.Context, podID string) (*ent.Deliberation, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	// FIFO: oldest pending first. SKIP LOCKED lets concurrent workers claim
	// different rows instead of serializing on the head of the queue.
	del, err := tx.Deliberation.Query().
		Where(
			deliberation.StatusEQ(deliberation.StatusPending),
			deliberation.DeletedAtIsNil(),
		).
		Order(ent.Asc(deliberation.FieldCreatedAt)).
		Limit(1).
		ForUpdate(entsql.WithLockAction(entsql.SkipLocked)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil // No pending deliberations
		}
		return nil, fmt.Errorf("failed to query pending deliberation: %w", err)
	}

	now := time.Now()
	del, err = del.Update().
		SetStatus(deliberation.StatusInProgress).
		SetPodID(podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim deliberation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return del, nil
}

// UpdateHeartbeat refreshes the claim heartbeat of a running deliberation
func (s *DeliberationService) UpdateHeartbeat(ctx context.Context, deliberationID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Deliberation.UpdateOneID(deliberationID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update heartbeat: %w", err)
	}
	return nil
}

// FindOrphaned finds in-progress deliberations whose heartbeat is older
// than the threshold, i.e. whose worker pod died.
func (s *DeliberationService) FindOrphaned(ctx context.Context, threshold time.Duration) ([]*ent.Deliberation, error) {
	cutoff := time.Now().Add(-threshold)

	deliberations, err := s.client.Deliberation.Query().
		Where(
			deliberation.StatusIn(deliberation.StatusInProgress, deliberation.StatusCancelling),
			deliberation.LastInteractionAtNotNil(),
			deliberation.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned deliberations: %w", err)
	}
	return deliberations, nil
}

// FailStartupOrphans marks this pod's leftover in-flight deliberations
// timed_out. Called once at startup to clean up after a crash or restart.
func (s *DeliberationService) FailStartupOrphans(ctx context.Context, podID string) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := s.client.Deliberation.Update().
		Where(
			deliberation.PodIDEQ(podID),
			deliberation.StatusIn(deliberation.StatusInProgress, deliberation.StatusCancelling),
		).
		SetStatus(deliberation.StatusTimedOut).
		SetErrorMessage("pod restarted while deliberation was running").
		SetCompletedAt(time.Now()).
		Save(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to fail startup orphans: %w", err)
	}
	return count, nil
}

// CompleteInTx writes the terminal status and the full deliberation output
// (answers, verdicts, score sets, synthesis) in one transaction, so readers
// never observe a completed deliberation with partial results.
func (s *DeliberationService) CompleteInTx(ctx context.Context, deliberationID string, status deliberation.Status, out *council.Output, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	del, err := tx.Deliberation.Get(writeCtx, deliberationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get deliberation: %w", err)
	}

	now := time.Now()
	update := tx.Deliberation.UpdateOne(del).
		SetStatus(status).
		SetCompletedAt(now).
		SetLastInteractionAt(now)
	if del.StartedAt != nil {
		update = update.SetDurationMs(now.Sub(*del.StartedAt).Milliseconds())
	}
	if errorMessage != "" {
		update = update.SetErrorMessage(errorMessage)
	}
	if out != nil && out.Synthesis != "" {
		update = update.SetSynthesis(out.Synthesis)
	}
	if err := update.Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to update deliberation: %w", err)
	}

	if out != nil {
		if err := persistOutput(writeCtx, tx, deliberationID, out); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit completion: %w", err)
	}
	return nil
}

// persistOutput writes the engine output's answers, verdicts and score sets
// inside the completion transaction.
func persistOutput(ctx context.Context, tx *ent.Tx, deliberationID string, out *council.Output) error {
	for i, a := range out.Answers {
		builder := tx.Answer.Create().
			SetID(newID("ans")).
			SetDeliberationID(deliberationID).
			SetRoleIndex(i).
			SetRole(a.Role).
			SetModel(a.Model).
			SetSuccess(a.Success)
		if a.Content != "" {
			builder.SetContent(a.Content)
		}
		if a.Error != "" {
			builder.SetErrorMessage(a.Error)
		}
		if a.TokensUsed > 0 {
			builder.SetTokensUsed(a.TokensUsed)
		}
		if a.LatencyMS > 0 {
			builder.SetLatencyMs(a.LatencyMS)
		}
		if label, ok := out.Metadata.Labels[a.Role]; ok {
			builder.SetLabel(label)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to persist answer %d: %w", i, err)
		}
	}

	for idx, v := range out.Verdicts {
		builder := tx.Verdict.Create().
			SetID(newID("ver")).
			SetDeliberationID(deliberationID).
			SetJudge(v.Judge).
			SetJudgeIndex(v.JudgeIndex).
			SetI(v.I).
			SetJ(v.J).
			SetMargin(v.Margin)
		if v.Raw != "" {
			builder.SetRaw(v.Raw)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to persist verdict %d: %w", idx, err)
		}
	}

	for method, ms := range out.Scores {
		builder := tx.ScoreSet.Create().
			SetID(newID("scs")).
			SetDeliberationID(deliberationID).
			SetMethod(scoreset.Method(method)).
			SetScores(ms.Scores).
			SetCreatedAt(time.Now())
		if len(ms.ConfidenceIntervals) > 0 {
			builder.SetConfidenceIntervals(ms.ConfidenceIntervals)
		}
		if method == out.Metadata.PrimaryMethod || len(out.Metadata.Uncontested) > 0 {
			meta := map[string]interface{}{}
			if method == out.Metadata.PrimaryMethod {
				meta["primary"] = true
			}
			if len(out.Metadata.Uncontested) > 0 {
				meta["uncontested"] = out.Metadata.Uncontested
			}
			builder.SetMetadata(meta)
		}
		if _, err := builder.Save(ctx); err != nil {
			return fmt.Errorf("failed to persist score set %q: %w", method, err)
		}
	}

	return nil
}

// SoftDeleteOld soft deletes deliberations completed before the retention
// window. Idempotent and safe to run from multiple pods.
func (s *DeliberationService) SoftDeleteOld(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, fmt.Errorf("retention_days must be positive, got %d", retentionDays)
	}

	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour)

	deleteCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.Deliberation.Update().
		Where(
			deliberation.CompletedAtLT(cutoff),
			deliberation.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(deleteCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft delete deliberations: %w", err)
	}
	return count, nil
}

// toJSONSlice converts a slice of structs into the generic JSON shape the
// snapshot columns store.
func toJSONSlice(v interface{}) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// toJSONMap converts a struct into a generic JSON object.
func toJSONMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
