package rank

import (
	"math"
	"math/rand/v2"
	"sort"
)

const (
	eloInitialRating = 1000.0
	eloKFactor       = 32.0

	// DefaultBootstrapRounds is the number of resamples used for the 95%
	// confidence intervals when the caller does not configure one.
	DefaultBootstrapRounds = 1000

	// DefaultBootstrapSeed seeds the resampling RNG. A fixed seed keeps the
	// reported intervals reproducible across runs on identical verdicts;
	// deployments wanting run-to-run variation configure their own.
	DefaultBootstrapSeed = 1
)

// ELO rates candidates by replaying the verdicts as a sequence of matches.
// Each verdict's outcome for the lower-index candidate is 0.5 + margin/4,
// updated with K=32 from an initial rating of 1000.
//
// The point estimate replays the verdicts in the order given, which is why
// callers pass the canonical order. Confidence intervals come from
// bootstrap resampling: BootstrapRounds resamples with replacement of the
// verdict list, each replayed from scratch, with the 2.5 and 97.5
// percentiles reported per candidate. The resampling RNG is seeded from
// Seed, so intervals are deterministic for a fixed seed.
type ELO struct {
	BootstrapRounds int
	Seed            int64
}

// NewELO returns an ELO aggregator. Non-positive rounds disable interval
// estimation entirely.
func NewELO(bootstrapRounds int, seed int64) *ELO {
	return &ELO{BootstrapRounds: bootstrapRounds, Seed: seed}
}

// Name returns the method name.
func (e *ELO) Name() string { return MethodELO }

// Score computes point ratings over the given verdict order plus bootstrap
// confidence intervals per candidate.
func (e *ELO) Score(verdicts []Verdict, candidates []Candidate) (*Scores, error) {
	if err := checkVerdicts(verdicts, len(candidates)); err != nil {
		return nil, err
	}
	n := len(candidates)

	point := replay(verdicts, n)

	scores := make(map[string]float64, n)
	for i, c := range candidates {
		scores[c.Name] = point[i]
	}

	result := &Scores{
		Method: MethodELO,
		Scores: scores,
		Metadata: map[string]any{
			"bootstrap_rounds": e.BootstrapRounds,
			"bootstrap_seed":   e.Seed,
		},
	}

	if e.BootstrapRounds <= 0 || len(verdicts) == 0 {
		return result, nil
	}

	rng := rand.New(rand.NewPCG(uint64(e.Seed), uint64(e.Seed)))
	byCandidate := make([][]float64, n)
	for i := range byCandidate {
		byCandidate[i] = make([]float64, 0, e.BootstrapRounds)
	}

	resample := make([]Verdict, len(verdicts))
	for round := 0; round < e.BootstrapRounds; round++ {
		for k := range resample {
			resample[k] = verdicts[rng.IntN(len(verdicts))]
		}
		ratings := replay(resample, n)
		for i := 0; i < n; i++ {
			byCandidate[i] = append(byCandidate[i], ratings[i])
		}
	}

	intervals := make(map[string][2]float64, n)
	for i, c := range candidates {
		sort.Float64s(byCandidate[i])
		intervals[c.Name] = [2]float64{
			percentile(byCandidate[i], 2.5),
			percentile(byCandidate[i], 97.5),
		}
	}
	result.ConfidenceIntervals = intervals

	return result, nil
}

// replay runs the sequential ELO update over one verdict ordering.
func replay(verdicts []Verdict, n int) []float64 {
	ratings := make([]float64, n)
	for i := range ratings {
		ratings[i] = eloInitialRating
	}
	for _, v := range verdicts {
		outcomeI := 0.5 + float64(v.Margin)/4.0
		expectedI := 1.0 / (1.0 + math.Pow(10, (ratings[v.J]-ratings[v.I])/400.0))
		ratings[v.I] += eloKFactor * (outcomeI - expectedI)
		ratings[v.J] += eloKFactor * ((1 - outcomeI) - (1 - expectedI))
	}
	return ratings
}

// percentile returns the p-th percentile of sorted values using linear
// interpolation between closest ranks.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := p / 100.0 * float64(len(sorted)-1)
	lower := int(math.Floor(pos))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}
