package council

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/plenumhq/plenum/pkg/council/rank"
	"github.com/plenumhq/plenum/pkg/llm"
)

// Sentinel errors for the two wholesale failure modes. Everything else
// degrades into structured output fields.
var (
	// ErrInvalidRequest marks malformed input: too few roles, a role
	// without a model, or a requested synthesis without a chairman model.
	ErrInvalidRequest = errors.New("invalid deliberation request")

	// ErrCancelled is returned when cancellation or a deadline fires
	// before the generation stage produced at least two successful
	// answers, i.e. before any partial output is worth returning.
	ErrCancelled = errors.New("deliberation cancelled")
)

// minRoles is the smallest council: pairwise review needs two candidates.
const minRoles = 2

// DefaultDeadline bounds one whole deliberation end to end.
const DefaultDeadline = 10 * time.Minute

// Config tunes an Engine. The zero value gets the documented defaults.
type Config struct {
	// BootstrapRounds for the ELO confidence intervals. Defaults to
	// rank.DefaultBootstrapRounds.
	BootstrapRounds int

	// BootstrapSeed for the resampling RNG. Defaults to
	// rank.DefaultBootstrapSeed, which makes intervals reproducible.
	BootstrapSeed int64

	// Deadline bounds the whole deliberation. Defaults to DefaultDeadline.
	Deadline time.Duration

	// Observer receives progress callbacks; nil means none.
	Observer Observer
}

// Engine runs deliberations against one provider. Safe for concurrent use:
// all per-deliberation state is request-scoped.
type Engine struct {
	provider        llm.Provider
	observer        Observer
	bootstrapRounds int
	bootstrapSeed   int64
	deadline        time.Duration
}

// New creates an Engine over the given provider.
func New(provider llm.Provider, cfg Config) *Engine {
	e := &Engine{
		provider:        provider,
		observer:        cfg.Observer,
		bootstrapRounds: cfg.BootstrapRounds,
		bootstrapSeed:   cfg.BootstrapSeed,
		deadline:        cfg.Deadline,
	}
	if e.observer == nil {
		e.observer = nopObserver{}
	}
	if e.bootstrapRounds == 0 {
		e.bootstrapRounds = rank.DefaultBootstrapRounds
	}
	if e.bootstrapSeed == 0 {
		e.bootstrapSeed = rank.DefaultBootstrapSeed
	}
	if e.deadline <= 0 {
		e.deadline = DefaultDeadline
	}
	return e
}

// Deliberate runs the full pipeline: generation, peer review, aggregation,
// synthesis, in that order. It returns ErrInvalidRequest on malformed
// input and ErrCancelled when cancellation preempts a usable result;
// otherwise it always returns an Output, degrading per-stage failures into
// empty score maps and an absent synthesis rather than failing wholesale.
func (e *Engine) Deliberate(ctx context.Context, task string, roles []Role, opts Options) (*Output, error) {
	opts = opts.normalized()
	if err := validate(task, roles, opts); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, e.deadline)
	defer cancel()

	logger := slog.With("component", "council")
	logger.Info("Starting deliberation",
		"roles", len(roles),
		"output_mode", string(opts.OutputMode),
		"review", opts.Review,
		"anonymize", opts.Anonymize,
	)
	start := time.Now()

	out := &Output{
		Task:   task,
		Scores: map[string]MethodScores{},
		Metadata: Metadata{
			PrimaryMethod: opts.Aggregation,
		},
	}

	// Stage 1: generation.
	e.observer.GenerationStarted(len(roles))
	genStart := time.Now()
	out.Answers = e.generate(ctx, task, roles)
	out.Metadata.GenerationMS = time.Since(genStart).Milliseconds()

	candidates := successful(out.Answers)
	out.Metadata.SuccessfulAnswers = len(candidates)
	out.Metadata.FailedAnswers = len(out.Answers) - len(candidates)

	// A cancellation that preempted a usable candidate set fails the whole
	// call; with two or more successes we keep going and return whatever
	// the remaining stages manage to produce.
	if ctx.Err() != nil && len(candidates) < minRoles {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
	}

	// The label assignment is shared by review and synthesis so both
	// stages present the same identity for the same answer.
	labels := assignLabels(candidates)
	if opts.Anonymize {
		out.Metadata.Labels = labels
	}

	// Stage 2: peer review and aggregation.
	if opts.Review && len(candidates) >= minRoles {
		reviewStart := time.Now()
		judges := selectJudges(candidates, opts.Reviewers)
		rev := e.review(ctx, task, candidates, judges, labels, opts.Anonymize)
		out.Metadata.ReviewMS = time.Since(reviewStart).Milliseconds()
		out.Verdicts = rev.Verdicts
		out.Metadata.VerdictCount = len(rev.Verdicts)
		out.Metadata.UnparseableCount = rev.Unparseable
		out.Metadata.FailedJudgeCalls = rev.FailedCalls

		if len(rev.Verdicts) > 0 {
			e.aggregate(out, candidates, rev.Verdicts)
		}
	}

	// Stage 3: synthesis.
	if opts.OutputMode.WantsSynthesis() && len(candidates) >= 1 {
		synthStart := time.Now()
		out.Synthesis = e.synthesize(ctx, task, candidates, labels, opts, out.Scores)
		out.Metadata.SynthesisMS = time.Since(synthStart).Milliseconds()
	}

	out.Metadata.TotalMS = time.Since(start).Milliseconds()
	logger.Info("Deliberation complete",
		"successful_answers", out.Metadata.SuccessfulAnswers,
		"verdicts", out.Metadata.VerdictCount,
		"synthesis", out.Synthesis != "",
		"total_ms", out.Metadata.TotalMS,
	)
	return out, nil
}

// aggregate runs all three rank methods over the canonical verdict list.
// One method's internal failure drops that method only, with a log line;
// the others still report.
func (e *Engine) aggregate(out *Output, candidates []Answer, verdicts []Verdict) {
	rankCandidates := make([]rank.Candidate, len(candidates))
	for i, c := range candidates {
		rankCandidates[i] = rank.Candidate{Name: c.Role, Index: i}
	}
	rankVerdicts := make([]rank.Verdict, len(verdicts))
	for i, v := range verdicts {
		rankVerdicts[i] = rank.Verdict{I: v.I, J: v.J, Margin: v.Margin}
	}

	for _, method := range rank.Methods(e.bootstrapRounds, e.bootstrapSeed) {
		scores, err := method.Score(rankVerdicts, rankCandidates)
		if err != nil {
			slog.Error("Aggregation method failed",
				"component", "council",
				"method", method.Name(),
				"error", err,
			)
			continue
		}
		out.Scores[method.Name()] = MethodScores{
			Scores:              scores.Scores,
			ConfidenceIntervals: scores.ConfidenceIntervals,
		}
		if flagged, ok := scores.Metadata["uncontested"].([]string); ok {
			out.Metadata.Uncontested = flagged
		}
	}
}

// validate enforces the request contract: at least two roles, every role
// with a non-empty model, unique role names, a valid output mode, and a
// chairman model whenever synthesis is requested.
func validate(task string, roles []Role, opts Options) error {
	if task == "" {
		return fmt.Errorf("%w: task is empty", ErrInvalidRequest)
	}
	if len(roles) < minRoles {
		return fmt.Errorf("%w: need at least %d roles, got %d", ErrInvalidRequest, minRoles, len(roles))
	}
	seen := make(map[string]bool, len(roles))
	for i, r := range roles {
		if r.Name == "" {
			return fmt.Errorf("%w: role %d has no name", ErrInvalidRequest, i)
		}
		if r.Model == "" {
			return fmt.Errorf("%w: role %q has no model", ErrInvalidRequest, r.Name)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate role name %q", ErrInvalidRequest, r.Name)
		}
		seen[r.Name] = true
	}
	if !opts.OutputMode.Valid() {
		return fmt.Errorf("%w: unknown output mode %q", ErrInvalidRequest, opts.OutputMode)
	}
	if opts.OutputMode.WantsSynthesis() && opts.ChairmanModel == "" {
		return fmt.Errorf("%w: output mode %q requires a chairman model", ErrInvalidRequest, opts.OutputMode)
	}
	switch opts.Aggregation {
	case rank.MethodBorda, rank.MethodBradleyTerry, rank.MethodELO:
	default:
		return fmt.Errorf("%w: unknown aggregation method %q", ErrInvalidRequest, opts.Aggregation)
	}
	return nil
}
