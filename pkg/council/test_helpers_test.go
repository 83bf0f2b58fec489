package council

import (
	"context"
	"strings"
	"sync"

	"github.com/plenumhq/plenum/pkg/llm"
)

// scriptedProvider is a Provider fake that answers from a script function.
// It records every request it sees, safely under concurrent calls.
type scriptedProvider struct {
	mu    sync.Mutex
	calls []llm.CompletionRequest
	// script decides the reply per request. Nil falls back to a canned
	// answer derived from the model id.
	script func(req llm.CompletionRequest) (*llm.Completion, error)
}

func (p *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.Completion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	p.calls = append(p.calls, req)
	p.mu.Unlock()

	if p.script != nil {
		return p.script(req)
	}
	return &llm.Completion{Text: "answer from " + req.Model}, nil
}

func (p *scriptedProvider) Close() error { return nil }

// recorded returns a snapshot of the requests seen so far.
func (p *scriptedProvider) recorded() []llm.CompletionRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]llm.CompletionRequest, len(p.calls))
	copy(out, p.calls)
	return out
}

// isJudgeCall distinguishes peer-review requests from generation and
// synthesis requests by their system prompt.
func isJudgeCall(req llm.CompletionRequest) bool {
	return req.System == judgeSystemPrompt
}

func isSynthesisCall(req llm.CompletionRequest) bool {
	return req.System == chairmanSystemPrompt
}

// verdictScript answers generation calls with per-model text, judge calls
// with the given verdict token, and synthesis calls with a fixed summary.
func verdictScript(verdict string) func(req llm.CompletionRequest) (*llm.Completion, error) {
	return func(req llm.CompletionRequest) (*llm.Completion, error) {
		switch {
		case isJudgeCall(req):
			return &llm.Completion{Text: "Considered both.\n" + verdict}, nil
		case isSynthesisCall(req):
			return &llm.Completion{Text: "The council concludes."}, nil
		default:
			return &llm.Completion{Text: "answer from " + req.Model, TokensUsed: 10}, nil
		}
	}
}

// testRoles builds n roles named R1..Rn with distinct model ids.
func testRoles(n int) []Role {
	roles := make([]Role, n)
	for i := range roles {
		name := "R" + string(rune('1'+i))
		roles[i] = Role{Name: name, Model: "model/" + strings.ToLower(name)}
	}
	return roles
}
