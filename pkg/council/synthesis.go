package council

import (
	"context"
	"log/slog"

	"github.com/plenumhq/plenum/pkg/llm"
)

// synthesisTemperature follows the chairman's role: it writes prose, not
// verdicts, so it runs warmer than the judges.
var synthesisTemperature = 0.7

// synthesize issues the single chairman call. The candidates are presented
// with the same label assignment the review stage used, so the chairman and
// the judges saw identical identities. A failed call yields an empty
// synthesis; the rest of the output is unaffected.
func (e *Engine) synthesize(ctx context.Context, task string, candidates []Answer, labels map[string]string, opts Options, scores map[string]MethodScores) string {
	logger := slog.With("component", "council", "stage", "synthesis")

	prompt := buildSynthesisPrompt(task, candidates, labels, opts.Anonymize, scores)
	completion, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:  opts.ChairmanModel,
		System: chairmanSystemPrompt,
		User:   prompt,
		Sampling: llm.Sampling{
			Temperature: &synthesisTemperature,
		},
	})
	if err != nil {
		logger.Warn("Synthesis call failed", "chairman_model", opts.ChairmanModel, "error", err)
		return ""
	}
	if completion.Text == "" {
		logger.Warn("Synthesis returned empty response", "chairman_model", opts.ChairmanModel)
		return ""
	}

	e.observer.SynthesisCompleted(completion.Text)
	logger.Info("Synthesis complete", "chairman_model", opts.ChairmanModel, "length", len(completion.Text))
	return completion.Text
}
