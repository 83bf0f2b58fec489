package council

// Observer receives progress callbacks in coordinator stage order. The
// service layer bridges these to persisted WebSocket events; the engine
// itself attaches no meaning to them.
//
// Callbacks run on the coordinator's goroutine and must not block.
type Observer interface {
	// GenerationStarted fires once, before the first provider call.
	GenerationStarted(roleCount int)

	// GenerationCompleted fires once per role as its answer arrives,
	// in completion order.
	GenerationCompleted(answer Answer)

	// ReviewProgress fires after each judge call settles.
	ReviewProgress(done, total int)

	// SynthesisCompleted fires when the chairman call succeeds.
	SynthesisCompleted(synthesis string)
}

// nopObserver stands in when the caller supplies no observer.
type nopObserver struct{}

func (nopObserver) GenerationStarted(int)      {}
func (nopObserver) GenerationCompleted(Answer) {}
func (nopObserver) ReviewProgress(int, int)    {}
func (nopObserver) SynthesisCompleted(string)  {}
