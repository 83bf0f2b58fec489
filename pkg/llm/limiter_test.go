package llm

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedProvider blocks each call until released, tracking the in-flight
// high-water mark.
type gatedProvider struct {
	release   chan struct{}
	inFlight  atomic.Int32
	highWater atomic.Int32
}

func (g *gatedProvider) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	cur := g.inFlight.Add(1)
	defer g.inFlight.Add(-1)
	for {
		hw := g.highWater.Load()
		if cur <= hw || g.highWater.CompareAndSwap(hw, cur) {
			break
		}
	}

	select {
	case <-g.release:
		return &Completion{Text: "ok"}, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (g *gatedProvider) Close() error { return nil }

func TestLimitCapsInFlight(t *testing.T) {
	inner := &gatedProvider{release: make(chan struct{})}
	limited := Limit(inner, 3)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := limited.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
			assert.NoError(t, err)
		}()
	}

	close(inner.release)
	wg.Wait()

	assert.LessOrEqual(t, inner.highWater.Load(), int32(3))
}

func TestLimitHonorsCancellationWhileWaiting(t *testing.T) {
	inner := &gatedProvider{release: make(chan struct{})}
	limited := Limit(inner, 1)

	// Occupy the only slot.
	go limited.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
	for inner.inFlight.Load() == 0 {
		time.Sleep(time.Millisecond)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := limited.Complete(ctx, CompletionRequest{Model: "m", User: "q"})
	require.ErrorIs(t, err, context.Canceled)

	close(inner.release)
}

func TestLimitDefaultCap(t *testing.T) {
	inner := &gatedProvider{release: make(chan struct{})}
	close(inner.release)

	limited := Limit(inner, 0)
	_, err := limited.Complete(context.Background(), CompletionRequest{Model: "m", User: "q"})
	assert.NoError(t, err)
}

type probedProvider struct {
	gatedProvider
	healthErr error
}

func (p *probedProvider) Health(ctx context.Context) error { return p.healthErr }

func TestProbeForwardsThroughLimiter(t *testing.T) {
	inner := &probedProvider{healthErr: assert.AnError}
	supported, err := Probe(context.Background(), Limit(inner, 1))
	assert.True(t, supported)
	require.ErrorIs(t, err, assert.AnError)

	inner.healthErr = nil
	supported, err = Probe(context.Background(), Limit(inner, 1))
	assert.True(t, supported)
	assert.NoError(t, err)
}

func TestProbeUnsupportedProvider(t *testing.T) {
	inner := &gatedProvider{release: make(chan struct{})}
	supported, err := Probe(context.Background(), inner)
	assert.False(t, supported)
	assert.NoError(t, err)
}
