package council

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/pkg/council/rank"
	"github.com/plenumhq/plenum/pkg/llm"
)

func TestDeliberate_Validation(t *testing.T) {
	engine := New(&scriptedProvider{}, Config{})

	tests := []struct {
		name  string
		task  string
		roles []Role
		opts  Options
	}{
		{
			name:  "empty task",
			task:  "",
			roles: testRoles(2),
			opts:  DefaultOptions(),
		},
		{
			name:  "one role is not a council",
			task:  "q",
			roles: testRoles(1),
			opts:  DefaultOptions(),
		},
		{
			name:  "role without model",
			task:  "q",
			roles: []Role{{Name: "R1", Model: "m"}, {Name: "R2"}},
			opts:  DefaultOptions(),
		},
		{
			name:  "duplicate role names",
			task:  "q",
			roles: []Role{{Name: "R1", Model: "m1"}, {Name: "R1", Model: "m2"}},
			opts:  DefaultOptions(),
		},
		{
			name:  "synthesis without chairman",
			task:  "q",
			roles: testRoles(2),
			opts:  Options{OutputMode: OutputModeBoth, Review: true, Anonymize: true},
		},
		{
			name:  "unknown output mode",
			task:  "q",
			roles: testRoles(2),
			opts:  Options{OutputMode: "banana", ChairmanModel: "m"},
		},
		{
			name:  "unknown aggregation method",
			task:  "q",
			roles: testRoles(2),
			opts:  Options{OutputMode: OutputModePerspectives, Aggregation: "schulze"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Deliberate(context.Background(), tt.task, tt.roles, tt.opts)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestDeliberate_PerspectivesModeNeedsNoChairman(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A=B]]")}
	engine := New(provider, Config{BootstrapRounds: 50})

	opts := DefaultOptions()
	opts.OutputMode = OutputModePerspectives

	out, err := engine.Deliberate(context.Background(), "q", testRoles(2), opts)
	require.NoError(t, err)
	assert.Empty(t, out.Synthesis)
	assert.Len(t, out.Scores, 3)
}

// Scenario: two roles, the judges see a decisive win for the first answer.
func TestDeliberate_DecisiveWin(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("verdict: [[A≫B]]")}
	engine := New(provider, Config{BootstrapRounds: 100})

	opts := DefaultOptions()
	opts.ChairmanModel = "model/chair"
	opts.Reviewers = []string{"R1"}

	out, err := engine.Deliberate(context.Background(), "what is truth", testRoles(2), opts)
	require.NoError(t, err)

	require.Len(t, out.Answers, 2)
	assert.Equal(t, "R1", out.Answers[0].Role)
	assert.Equal(t, "R2", out.Answers[1].Role)

	// One judge, one pair.
	require.Len(t, out.Verdicts, 1)
	assert.Equal(t, "R1", out.Verdicts[0].Judge)
	assert.Equal(t, 2, out.Verdicts[0].Margin)

	borda := out.Scores[rank.MethodBorda].Scores
	assert.Equal(t, 3.0, borda["R1"])
	assert.Equal(t, 0.0, borda["R2"])

	bt := out.Scores[rank.MethodBradleyTerry].Scores
	assert.Greater(t, bt["R1"], bt["R2"])

	elo := out.Scores[rank.MethodELO].Scores
	assert.Greater(t, elo["R1"], 1000.0)
	assert.Less(t, elo["R2"], 1000.0)

	assert.Equal(t, "The council concludes.", out.Synthesis)
}

// Scenario: every judge calls every pair a tie.
func TestDeliberate_AllTies(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A=B]]")}
	engine := New(provider, Config{BootstrapRounds: 100})

	opts := DefaultOptions()
	opts.ChairmanModel = "model/chair"

	out, err := engine.Deliberate(context.Background(), "q", testRoles(3), opts)
	require.NoError(t, err)

	// 3 judges x 3 pairs.
	assert.Len(t, out.Verdicts, 9)
	assert.Equal(t, 9, out.Metadata.VerdictCount)

	borda := out.Scores[rank.MethodBorda].Scores
	assert.Equal(t, borda["R1"], borda["R2"])
	assert.Equal(t, borda["R2"], borda["R3"])

	bt := out.Scores[rank.MethodBradleyTerry].Scores
	assert.InDelta(t, bt["R1"], bt["R2"], 1e-6)
	assert.InDelta(t, bt["R2"], bt["R3"], 1e-6)

	elo := out.Scores[rank.MethodELO].Scores
	for _, name := range []string{"R1", "R2", "R3"} {
		assert.Equal(t, 1000.0, elo[name])
	}
}

// Scenario: one generation fails; the council continues with the rest.
func TestDeliberate_FailedGeneration(t *testing.T) {
	provider := &scriptedProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		if req.Model == "model/r1" && !isJudgeCall(req) && !isSynthesisCall(req) {
			return nil, &llm.ProviderError{Model: req.Model, StatusCode: 500, Message: "upstream exploded", Transient: true}
		}
		return verdictScript("[[A>B]]")(req)
	}}
	engine := New(provider, Config{BootstrapRounds: 50})

	opts := DefaultOptions()
	opts.ChairmanModel = "model/chair"

	out, err := engine.Deliberate(context.Background(), "q", testRoles(3), opts)
	require.NoError(t, err)

	// All three answers come back, in input order, one failed.
	require.Len(t, out.Answers, 3)
	assert.False(t, out.Answers[0].Success)
	assert.Contains(t, out.Answers[0].Error, "upstream exploded")
	assert.True(t, out.Answers[1].Success)
	assert.True(t, out.Answers[2].Success)
	assert.Equal(t, 2, out.Metadata.SuccessfulAnswers)
	assert.Equal(t, 1, out.Metadata.FailedAnswers)

	// Review ran over {R2, R3} only: 2 judges x 1 pair.
	assert.Len(t, out.Verdicts, 2)
	for _, method := range []string{rank.MethodBorda, rank.MethodBradleyTerry, rank.MethodELO} {
		scores := out.Scores[method].Scores
		assert.Len(t, scores, 2, method)
		assert.Contains(t, scores, "R2", method)
		assert.Contains(t, scores, "R3", method)
	}
}

// Scenario: one judge never produces a parseable verdict.
func TestDeliberate_UnparseableJudge(t *testing.T) {
	provider := &scriptedProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		if isJudgeCall(req) && req.Model == "model/r1" {
			return &llm.Completion{Text: "I'm not sure"}, nil
		}
		return verdictScript("[[A>B]]")(req)
	}}
	engine := New(provider, Config{BootstrapRounds: 50})

	opts := DefaultOptions()
	opts.OutputMode = OutputModePerspectives

	out, err := engine.Deliberate(context.Background(), "q", testRoles(4), opts)
	require.NoError(t, err)

	// 4 candidates: 6 pairs per judge. R1's 6 judgments are unparseable,
	// the other 18 aggregate normally.
	assert.Equal(t, 6, out.Metadata.UnparseableCount)
	assert.Len(t, out.Verdicts, 18)
	assert.Len(t, out.Scores[rank.MethodBorda].Scores, 4)
}

func TestDeliberate_EmptyResponseIsFailure(t *testing.T) {
	provider := &scriptedProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		return &llm.Completion{Text: ""}, nil
	}}
	engine := New(provider, Config{})

	opts := DefaultOptions()
	opts.OutputMode = OutputModePerspectives

	out, err := engine.Deliberate(context.Background(), "q", testRoles(2), opts)
	require.NoError(t, err)
	for _, a := range out.Answers {
		assert.False(t, a.Success)
		assert.Equal(t, "empty response", a.Error)
	}
	assert.Empty(t, out.Scores)
}

func TestDeliberate_ReviewDisabled(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A≫B]]")}
	engine := New(provider, Config{})

	opts := DefaultOptions()
	opts.Review = false
	opts.ChairmanModel = "model/chair"

	out, err := engine.Deliberate(context.Background(), "q", testRoles(3), opts)
	require.NoError(t, err)
	assert.Empty(t, out.Scores)
	assert.Empty(t, out.Verdicts)
	assert.NotEmpty(t, out.Synthesis)

	// No judge calls went out.
	for _, req := range provider.recorded() {
		assert.False(t, isJudgeCall(req))
	}
}

// Scenario: cancellation before generation completes fails wholesale.
func TestDeliberate_CancelledBeforeGeneration(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A=B]]")}
	engine := New(provider, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := engine.Deliberate(ctx, "q", testRoles(2), optionsWithChairman())
	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrCancelled)
}

// Scenario: cancellation mid-review degrades to a partial verdict set and
// an absent synthesis instead of an error.
func TestDeliberate_CancelledMidReview(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var judgeCalls atomic.Int32
	provider := &scriptedProvider{script: func(req llm.CompletionRequest) (*llm.Completion, error) {
		if isSynthesisCall(req) {
			return nil, ctx.Err()
		}
		if isJudgeCall(req) {
			// Let the first judgment through, then pull the plug.
			if judgeCalls.Add(1) > 1 {
				cancel()
				return nil, context.Canceled
			}
			return &llm.Completion{Text: "[[A>B]]"}, nil
		}
		return &llm.Completion{Text: "answer from " + req.Model}, nil
	}}
	engine := New(provider, Config{BootstrapRounds: 50})

	out, err := engine.Deliberate(ctx, "q", testRoles(3), optionsWithChairman())
	require.NoError(t, err)

	// Whatever verdicts arrived still aggregate; synthesis is absent.
	assert.NotEmpty(t, out.Verdicts)
	assert.Less(t, len(out.Verdicts), 9)
	assert.Empty(t, out.Synthesis)
	assert.NotEmpty(t, out.Scores)
}

// Scenario: anonymization keeps role names out of judge prompts.
func TestDeliberate_AnonymizationHidesRoleNames(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A>B]]")}
	engine := New(provider, Config{BootstrapRounds: 50})

	roles := []Role{
		{Name: "Advocate", Model: "model/adv"},
		{Name: "Critic", Model: "model/crit"},
	}
	opts := DefaultOptions()
	opts.OutputMode = OutputModePerspectives

	out, err := engine.Deliberate(context.Background(), "q", roles, opts)
	require.NoError(t, err)

	for _, req := range provider.recorded() {
		if !isJudgeCall(req) {
			continue
		}
		assert.Contains(t, req.User, "A1")
		assert.Contains(t, req.User, "A2")
		assert.NotContains(t, req.User, "Advocate")
		assert.NotContains(t, req.User, "Critic")
	}

	// Scores are still keyed by real role names.
	assert.Contains(t, out.Scores[rank.MethodBorda].Scores, "Advocate")
	assert.Contains(t, out.Scores[rank.MethodBorda].Scores, "Critic")
	assert.Equal(t, map[string]string{"Advocate": "A1", "Critic": "A2"}, out.Metadata.Labels)
}

func TestDeliberate_AnonymizationOffShowsRoleNames(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A>B]]")}
	engine := New(provider, Config{BootstrapRounds: 50})

	opts := DefaultOptions()
	opts.Anonymize = false
	opts.OutputMode = OutputModePerspectives

	_, err := engine.Deliberate(context.Background(), "q", testRoles(2), opts)
	require.NoError(t, err)

	var judged bool
	for _, req := range provider.recorded() {
		if isJudgeCall(req) {
			judged = true
			assert.Contains(t, req.User, "R1")
			assert.Contains(t, req.User, "R2")
		}
	}
	assert.True(t, judged)
}

func TestDeliberate_ObserverSeesStageOrder(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A=B]]")}

	obs := &recordingObserver{}
	engine := New(provider, Config{BootstrapRounds: 50, Observer: obs})

	_, err := engine.Deliberate(context.Background(), "q", testRoles(2), optionsWithChairman())
	require.NoError(t, err)

	events := obs.snapshot()
	require.NotEmpty(t, events)
	assert.Equal(t, "generation_started", events[0])
	assert.Equal(t, "synthesis_completed", events[len(events)-1])

	var generations, reviews int
	for _, ev := range events {
		switch {
		case ev == "generation_completed":
			generations++
		case strings.HasPrefix(ev, "review_progress"):
			reviews++
		}
	}
	assert.Equal(t, 2, generations)
	// Two judges each compare the single pair.
	assert.Equal(t, 2, reviews)
}

func TestDeliberate_VerdictsInCanonicalOrder(t *testing.T) {
	provider := &scriptedProvider{script: verdictScript("[[A>B]]")}
	engine := New(provider, Config{BootstrapRounds: 50})

	opts := DefaultOptions()
	opts.OutputMode = OutputModePerspectives

	out, err := engine.Deliberate(context.Background(), "q", testRoles(3), opts)
	require.NoError(t, err)

	require.Len(t, out.Verdicts, 9)
	for i := 1; i < len(out.Verdicts); i++ {
		prev, cur := out.Verdicts[i-1], out.Verdicts[i]
		inOrder := prev.JudgeIndex < cur.JudgeIndex ||
			(prev.JudgeIndex == cur.JudgeIndex && (prev.I < cur.I || (prev.I == cur.I && prev.J < cur.J)))
		assert.True(t, inOrder, "verdict %d out of canonical order", i)
	}
}

// recordingObserver captures callback order for assertions.
type recordingObserver struct {
	mu     sync.Mutex
	events []string
}

func (o *recordingObserver) GenerationStarted(int) { o.record("generation_started") }
func (o *recordingObserver) GenerationCompleted(Answer) {
	o.record("generation_completed")
}
func (o *recordingObserver) ReviewProgress(done, total int) {
	o.record(fmt.Sprintf("review_progress %d/%d", done, total))
}
func (o *recordingObserver) SynthesisCompleted(string) { o.record("synthesis_completed") }

func (o *recordingObserver) record(ev string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, ev)
}

func (o *recordingObserver) snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]string, len(o.events))
	copy(out, o.events)
	return out
}

// optionsWithChairman is DefaultOptions plus a chairman model, for
// tests that exercise synthesis.
func optionsWithChairman() Options {
	opts := DefaultOptions()
	opts.ChairmanModel = "model/chair"
	return opts
}
