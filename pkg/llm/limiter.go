package llm

import "context"

// DefaultMaxInFlight is the recommended fan-out cap for one provider.
const DefaultMaxInFlight = 32

// Limit wraps a provider with an in-flight cap. The engine launches every
// generation and judge call eagerly; the limiter is the only brake, so the
// deliberation's total concurrency never exceeds max regardless of council
// size. A non-positive max falls back to DefaultMaxInFlight.
func Limit(p Provider, max int) Provider {
	if max <= 0 {
		max = DefaultMaxInFlight
	}
	return &limited{inner: p, slots: make(chan struct{}, max)}
}

type limited struct {
	inner Provider
	slots chan struct{}
}

// Complete acquires a slot, honoring cancellation while waiting.
func (l *limited) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	select {
	case l.slots <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	defer func() { <-l.slots }()

	return l.inner.Complete(ctx, req)
}

func (l *limited) Close() error {
	return l.inner.Close()
}

// Health forwards to the wrapped provider without taking a slot.
func (l *limited) Health(ctx context.Context) error {
	if hc, ok := l.inner.(HealthChecker); ok {
		return hc.Health(ctx)
	}
	return nil
}
