package council

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/plenumhq/plenum/pkg/llm"
)

type indexedAnswer struct {
	index  int
	answer Answer
}

// generate launches one provider call per role and returns N answers in the
// input role order regardless of completion order. An individual failure
// becomes a failed Answer with the error recorded; the stage itself never
// fails. Empty provider text is treated as a failure with reason
// "empty response".
func (e *Engine) generate(ctx context.Context, task string, roles []Role) []Answer {
	logger := slog.With("component", "council", "stage", "generation")

	results := make(chan indexedAnswer, len(roles))
	var wg sync.WaitGroup

	for i, role := range roles {
		wg.Add(1)
		go func(idx int, r Role) {
			defer wg.Done()
			results <- indexedAnswer{index: idx, answer: e.generateOne(ctx, task, r)}
		}(i, role)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect as completions arrive so the observer sees per-role progress,
	// then restore launch order.
	answers := make([]Answer, len(roles))
	for res := range results {
		answers[res.index] = res.answer
		e.observer.GenerationCompleted(res.answer)
	}

	var failed int
	for _, a := range answers {
		if !a.Success {
			failed++
		}
	}
	logger.Info("Generation stage complete",
		"roles", len(roles),
		"failed", failed,
	)
	return answers
}

// generateOne executes a single role's provider call.
func (e *Engine) generateOne(ctx context.Context, task string, role Role) Answer {
	start := time.Now()
	completion, err := e.provider.Complete(ctx, llm.CompletionRequest{
		Model:    role.Model,
		System:   role.SystemPrompt,
		User:     task,
		Sampling: role.Sampling,
	})

	answer := Answer{
		Role:      role.Name,
		Model:     role.Model,
		LatencyMS: time.Since(start).Milliseconds(),
	}
	if err != nil {
		answer.Error = err.Error()
		return answer
	}
	if completion.Text == "" {
		answer.Error = "empty response"
		return answer
	}

	answer.Content = completion.Text
	answer.Success = true
	answer.TokensUsed = completion.TokensUsed
	if completion.LatencyMS > 0 {
		answer.LatencyMS = completion.LatencyMS
	}
	return answer
}
