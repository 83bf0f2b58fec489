package rank

import "math"

const (
	// btTolerance is the convergence threshold on the maximum relative
	// change of any strength between iterations.
	btTolerance = 1e-6

	// btMaxIterations caps the MM loop when convergence stalls.
	btMaxIterations = 1000

	// btFloor keeps strengths strictly positive so the geometric-mean
	// renormalization stays finite for candidates that lost every contest.
	btFloor = 1e-9
)

// BradleyTerry fits latent strengths s under the model
// P(i beats j) = s_i / (s_i + s_j) using the standard
// Minorization-Maximization iteration.
//
// Each verdict contributes weighted win counts: a decisive win adds 2 to
// the winner, a narrow win 1, and a tie 0.5 to each side. Strengths are
// renormalized to geometric mean 1 before reporting. Reproducible to the
// iteration tolerance.
type BradleyTerry struct{}

// Name returns the method name.
func (BradleyTerry) Name() string { return MethodBradleyTerry }

// Score fits strengths over the verdict set. Candidates with zero contested
// weight are excluded from the fit, assigned the arithmetic mean of the
// fitted strengths, and listed under the "uncontested" metadata key.
func (BradleyTerry) Score(verdicts []Verdict, candidates []Candidate) (*Scores, error) {
	if err := checkVerdicts(verdicts, len(candidates)); err != nil {
		return nil, err
	}
	n := len(candidates)

	// wins[i][j] is the accumulated win weight of i over j.
	wins := make([][]float64, n)
	for i := range wins {
		wins[i] = make([]float64, n)
	}
	for _, v := range verdicts {
		switch v.Margin {
		case 2:
			wins[v.I][v.J] += 2
		case 1:
			wins[v.I][v.J] += 1
		case 0:
			wins[v.I][v.J] += 0.5
			wins[v.J][v.I] += 0.5
		case -1:
			wins[v.J][v.I] += 1
		case -2:
			wins[v.J][v.I] += 2
		}
	}

	contested := make([]bool, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if wins[i][j] > 0 || wins[j][i] > 0 {
				contested[i] = true
				break
			}
		}
	}

	strengths := make([]float64, n)
	for i := range strengths {
		strengths[i] = 1.0
	}

	iterations := 0
	converged := false
	for iterations < btMaxIterations {
		iterations++
		next := make([]float64, n)
		maxRel := 0.0
		for i := 0; i < n; i++ {
			if !contested[i] {
				next[i] = strengths[i]
				continue
			}
			var num, den float64
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				pairWeight := wins[i][j] + wins[j][i]
				if pairWeight == 0 {
					continue
				}
				num += wins[i][j]
				den += pairWeight / (strengths[i] + strengths[j])
			}
			if den == 0 {
				next[i] = strengths[i]
				continue
			}
			next[i] = math.Max(num/den, btFloor)
			if rel := math.Abs(next[i]-strengths[i]) / strengths[i]; rel > maxRel {
				maxRel = rel
			}
		}
		strengths = next
		if maxRel < btTolerance {
			converged = true
			break
		}
	}

	// Renormalize contested strengths to geometric mean 1.
	var logSum float64
	var contestedCount int
	for i := 0; i < n; i++ {
		if contested[i] {
			logSum += math.Log(strengths[i])
			contestedCount++
		}
	}
	if contestedCount > 0 {
		scale := math.Exp(logSum / float64(contestedCount))
		for i := 0; i < n; i++ {
			if contested[i] {
				strengths[i] /= scale
			}
		}
	}

	// Uncontested candidates get the mean of fitted strengths.
	var contestedSum float64
	for i := 0; i < n; i++ {
		if contested[i] {
			contestedSum += strengths[i]
		}
	}
	var uncontested []string
	for i := 0; i < n; i++ {
		if !contested[i] {
			if contestedCount > 0 {
				strengths[i] = contestedSum / float64(contestedCount)
			}
			uncontested = append(uncontested, candidates[i].Name)
		}
	}

	scores := make(map[string]float64, n)
	for i, c := range candidates {
		scores[c.Name] = strengths[i]
	}

	metadata := map[string]any{
		"iterations": iterations,
		"converged":  converged,
	}
	if len(uncontested) > 0 {
		metadata["uncontested"] = uncontested
	}

	return &Scores{Method: MethodBradleyTerry, Scores: scores, Metadata: metadata}, nil
}
