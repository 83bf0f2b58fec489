// Package council implements the deliberation engine: N roles answer a task
// in parallel, peer-review each other through pairwise comparisons, the
// verdicts are aggregated by three independent ranking methods, and a
// chairman model writes a final synthesis.
//
// The engine is request-scoped and persists nothing. It depends on exactly
// one outbound surface, llm.Provider, and reports progress through an
// optional Observer. Per-call failures degrade into structured fields
// (failed answers, missing verdicts, absent synthesis) rather than aborting
// the deliberation.
package council

import (
	"github.com/plenumhq/plenum/pkg/llm"
)

// Role is one seat at the council: a display name, an optional system
// prompt, the model that answers for it, and sampling parameters.
//
// Weight is accepted and echoed back to callers but is informational only;
// no aggregator reads it.
type Role struct {
	Name         string       `json:"name"`
	SystemPrompt string       `json:"system_prompt,omitempty"`
	Model        string       `json:"model"`
	Sampling     llm.Sampling `json:"sampling,omitempty"`
	Weight       float64      `json:"weight,omitempty"`
}

// Answer is one role's generation result. Exactly one Answer exists per
// role, in input order; a failed call becomes a stub with Success false and
// the error string recorded.
type Answer struct {
	Role       string `json:"role"`
	Model      string `json:"model"`
	Content    string `json:"content"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
	TokensUsed int    `json:"tokens_used,omitempty"`
	LatencyMS  int64  `json:"latency_ms,omitempty"`
}

// Verdict is one parsed pairwise judgment. I and J index the successful
// answer list with I < J; Margin is in {-2,-1,0,+1,+2} with positive
// favoring I. Raw keeps the judge's full reply for diagnostics.
type Verdict struct {
	Judge      string `json:"judge"`
	JudgeIndex int    `json:"judge_index"`
	I          int    `json:"i"`
	J          int    `json:"j"`
	Margin     int    `json:"margin"`
	Raw        string `json:"raw,omitempty"`
}

// MethodScores is one aggregation method's output in the wire shape:
// a score per role name plus optional 95% confidence intervals (only ELO
// populates them; the field is null for the other methods).
type MethodScores struct {
	Scores              map[string]float64    `json:"scores"`
	ConfidenceIntervals map[string][2]float64 `json:"confidence_intervals"`
}

// Metadata carries the deliberation's counters and timings.
type Metadata struct {
	PrimaryMethod     string            `json:"primary_method,omitempty"`
	SuccessfulAnswers int               `json:"successful_answers"`
	FailedAnswers     int               `json:"failed_answers"`
	VerdictCount      int               `json:"verdict_count"`
	UnparseableCount  int               `json:"unparseable_count"`
	FailedJudgeCalls  int               `json:"failed_judge_calls"`
	Labels            map[string]string `json:"labels,omitempty"`
	Uncontested       []string          `json:"uncontested,omitempty"`
	GenerationMS      int64             `json:"generation_ms"`
	ReviewMS          int64             `json:"review_ms"`
	SynthesisMS       int64             `json:"synthesis_ms"`
	TotalMS           int64             `json:"total_ms"`
}

// Output is the assembled deliberation result. Verdicts ride along for
// callers that persist them but are excluded from the JSON encoding; the
// wire document carries task, results, aggregation_scores, synthesis, and
// metadata.
type Output struct {
	Task      string                  `json:"task"`
	Answers   []Answer                `json:"results"`
	Scores    map[string]MethodScores `json:"aggregation_scores"`
	Synthesis string                  `json:"synthesis,omitempty"`
	Metadata  Metadata                `json:"metadata"`
	Verdicts  []Verdict               `json:"-"`
}

// Successful returns the successful answers with their original indexes
// preserved, in input order. This is the candidate set for peer review and
// aggregation.
func successful(answers []Answer) []Answer {
	out := make([]Answer, 0, len(answers))
	for _, a := range answers {
		if a.Success {
			out = append(out, a)
		}
	}
	return out
}
