package rank

// Borda scores candidates by weighted pairwise points: a decisive win is
// worth 3 points, a narrow win 1, and a tie 0.5 to each side. Scores are
// plain sums with no normalization, so the scale grows with the number of
// judges and pairs. Deterministic and exactly reproducible.
type Borda struct{}

// Name returns the method name.
func (Borda) Name() string { return MethodBorda }

// Score sums pairwise points per candidate across all verdicts.
func (Borda) Score(verdicts []Verdict, candidates []Candidate) (*Scores, error) {
	if err := checkVerdicts(verdicts, len(candidates)); err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		scores[c.Name] = 0
	}

	for _, v := range verdicts {
		iName := candidates[v.I].Name
		jName := candidates[v.J].Name
		switch v.Margin {
		case 2:
			scores[iName] += 3
		case 1:
			scores[iName] += 1
		case 0:
			scores[iName] += 0.5
			scores[jName] += 0.5
		case -1:
			scores[jName] += 1
		case -2:
			scores[jName] += 3
		}
	}

	return &Scores{Method: MethodBorda, Scores: scores}, nil
}
