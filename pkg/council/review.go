package council

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/plenumhq/plenum/pkg/llm"
)

// reviewResult is what the peer-review stage hands back to the coordinator:
// the canonical verdict list plus the counts the metadata record needs.
type reviewResult struct {
	Verdicts    []Verdict
	Unparseable int
	FailedCalls int
}

// judgeSeat is one judge in the review: its role name and its index in the
// judge enumeration, which fixes its position in the canonical order.
type judgeSeat struct {
	name  string
	model string
	index int
}

type pairIndex struct {
	i, j int
}

type indexedVerdict struct {
	verdict Verdict
	ok      bool // parseable
	failed  bool // provider call failed
}

// review issues one provider call per (judge, unordered candidate pair),
// parses each reply into a Verdict, and reassembles the results into
// canonical order: judge index first, then pair (i,j) lexicographic. A
// failed call loses that pair for that judge only; an unparseable reply is
// counted and excluded.
//
// Self-judgment is permitted by contract: a judge compares pairs containing
// its own answer, with bias mitigated by anonymization rather than pair
// exclusion.
func (e *Engine) review(ctx context.Context, task string, candidates []Answer, judges []judgeSeat, labels map[string]string, anonymize bool) reviewResult {
	logger := slog.With("component", "council", "stage", "review")

	pairs := enumeratePairs(len(candidates))
	total := len(judges) * len(pairs)
	if total == 0 {
		return reviewResult{}
	}

	results := make(chan indexedVerdict, total)
	var wg sync.WaitGroup

	for _, judge := range judges {
		for _, p := range pairs {
			wg.Add(1)
			go func(j judgeSeat, p pairIndex) {
				defer wg.Done()
				results <- e.judgePair(ctx, task, candidates, j, p, labels, anonymize)
			}(judge, p)
		}
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	var out reviewResult
	done := 0
	for res := range results {
		done++
		e.observer.ReviewProgress(done, total)
		switch {
		case res.failed:
			out.FailedCalls++
		case !res.ok:
			out.Unparseable++
		default:
			out.Verdicts = append(out.Verdicts, res.verdict)
		}
	}

	// Canonical order: judge index, then pair (i,j) lexicographic. The
	// point ELO estimate replays verdicts sequentially, so this is what
	// makes it reproducible on fixed verdicts.
	sort.Slice(out.Verdicts, func(a, b int) bool {
		va, vb := out.Verdicts[a], out.Verdicts[b]
		if va.JudgeIndex != vb.JudgeIndex {
			return va.JudgeIndex < vb.JudgeIndex
		}
		if va.I != vb.I {
			return va.I < vb.I
		}
		return va.J < vb.J
	})

	logger.Info("Peer review complete",
		"judges", len(judges),
		"pairs", len(pairs),
		"verdicts", len(out.Verdicts),
		"unparseable", out.Unparseable,
		"failed_calls", out.FailedCalls,
	)
	return out
}

// judgePair runs one comparison call and parses the verdict.
func (e *Engine) judgePair(ctx context.Context, task string, candidates []Answer, judge judgeSeat, p pairIndex, labels map[string]string, anonymize bool) indexedVerdict {
	a, b := candidates[p.i], candidates[p.j]
	prompt := buildJudgePrompt(task,
		displayName(a, labels, anonymize), a.Content,
		displayName(b, labels, anonymize), b.Content,
	)

	completion, err := e.judgeComplete(ctx, judge.model, prompt)
	if err != nil {
		slog.Debug("Judge call failed",
			"judge", judge.name,
			"pair_i", p.i,
			"pair_j", p.j,
			"error", err,
		)
		return indexedVerdict{failed: true}
	}

	margin, ok := parseVerdict(completion)
	v := Verdict{
		Judge:      judge.name,
		JudgeIndex: judge.index,
		I:          p.i,
		J:          p.j,
		Margin:     margin,
		Raw:        completion,
	}
	return indexedVerdict{verdict: v, ok: ok}
}

// Judges run cool and short: the reply only needs a brief justification
// and one verdict token.
var (
	judgeTemperature = 0.3
	judgeMaxTokens   = 500
)

// judgeComplete issues the provider call for one comparison and returns the
// reply text.
func (e *Engine) judgeComplete(ctx context.Context, model, prompt string) (string, error) {
	completion, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:  model,
		System: judgeSystemPrompt,
		User:   prompt,
		Sampling: llm.Sampling{
			Temperature: &judgeTemperature,
			MaxTokens:   &judgeMaxTokens,
		},
	})
	if err != nil {
		return "", err
	}
	return completion.Text, nil
}

// enumeratePairs lists the unordered pairs (i,j) with i < j in index order:
// k*(k-1)/2 pairs for k candidates.
func enumeratePairs(k int) []pairIndex {
	pairs := make([]pairIndex, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			pairs = append(pairs, pairIndex{i: i, j: j})
		}
	}
	return pairs
}

// selectJudges builds the judge set: all successful roles by default, or
// the named subset when reviewers is non-empty. Names that match no
// successful candidate are skipped. Judge indexes follow candidate order.
func selectJudges(candidates []Answer, reviewers []string) []judgeSeat {
	wanted := make(map[string]bool, len(reviewers))
	for _, r := range reviewers {
		wanted[r] = true
	}

	judges := make([]judgeSeat, 0, len(candidates))
	for _, c := range candidates {
		if len(reviewers) > 0 && !wanted[c.Role] {
			continue
		}
		judges = append(judges, judgeSeat{name: c.Role, model: c.Model, index: len(judges)})
	}
	return judges
}
