// Package rank turns pairwise verdicts into per-candidate scores.
//
// Three independent methods are implemented: Borda counts, Bradley-Terry
// maximum-likelihood strengths, and ELO ratings with bootstrap confidence
// intervals. All of them consume the same canonical verdict list and the
// same candidate set, and none of them reads judge identity, so their
// outputs are stable under verdict reordering (ELO's point estimate is the
// one order-sensitive quantity, which is why callers must pass verdicts in
// canonical order).
//
// The methods are deliberately not reconciled with each other: divergence
// between them is information for the caller, not an error.
package rank

import (
	"fmt"
	"sort"
)

// Method names reported in score sets and echoed in output metadata.
const (
	MethodBorda        = "borda"
	MethodBradleyTerry = "bradley_terry"
	MethodELO          = "elo"
)

// Candidate is one scored participant: its role name plus its stable index
// in generation order. The index is the tie-break of last resort.
type Candidate struct {
	Name  string
	Index int
}

// Verdict is one pairwise judgment reduced to what aggregation needs: the
// unordered candidate pair (I < J, indexes into the candidate set) and the
// margin in {-2, -1, 0, +1, +2}, positive favoring I.
//
// Judge identity is deliberately absent from this type. Aggregators must
// depend only on the pair and the margin.
type Verdict struct {
	I      int
	J      int
	Margin int
}

// Scores is the output of one aggregation method: a score per candidate
// name, optional per-candidate confidence intervals, and method-specific
// metadata (iteration counts, uncontested flags, bootstrap parameters).
type Scores struct {
	Method              string
	Scores              map[string]float64
	ConfidenceIntervals map[string][2]float64
	Metadata            map[string]any
}

// Aggregator is the common capability of the three methods.
type Aggregator interface {
	Name() string
	Score(verdicts []Verdict, candidates []Candidate) (*Scores, error)
}

// Methods returns all three aggregators, configured and ready to score.
// The bootstrap parameters apply to ELO only.
func Methods(bootstrapRounds int, seed int64) []Aggregator {
	return []Aggregator{
		Borda{},
		BradleyTerry{},
		NewELO(bootstrapRounds, seed),
	}
}

// RankOrder returns candidate names in descending score order. Equal scores
// keep candidate index order, so generation order decides between ties.
func RankOrder(scores map[string]float64, candidates []Candidate) []string {
	names := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := scores[c.Name]; ok {
			names = append(names, c.Name)
		}
	}
	sort.SliceStable(names, func(a, b int) bool {
		return scores[names[a]] > scores[names[b]]
	})
	return names
}

// checkVerdicts rejects verdicts that reference candidates outside the set
// or carry an impossible margin. Parsing upstream guarantees neither can
// happen, so a failure here is a bug, not bad input.
func checkVerdicts(verdicts []Verdict, n int) error {
	for _, v := range verdicts {
		if v.I < 0 || v.J <= v.I || v.J >= n {
			return fmt.Errorf("verdict pair (%d,%d) out of range for %d candidates", v.I, v.J, n)
		}
		if v.Margin < -2 || v.Margin > 2 {
			return fmt.Errorf("verdict margin %d out of range [-2,2]", v.Margin)
		}
	}
	return nil
}
