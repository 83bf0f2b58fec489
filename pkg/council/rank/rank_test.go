package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMethods(t *testing.T) {
	methods := Methods(100, 7)
	require.Len(t, methods, 3)

	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.Name()
	}
	assert.Equal(t, []string{MethodBorda, MethodBradleyTerry, MethodELO}, names)
}

func TestRankOrder(t *testing.T) {
	candidates := []Candidate{
		{Name: "R1", Index: 0},
		{Name: "R2", Index: 1},
		{Name: "R3", Index: 2},
	}

	tests := []struct {
		name   string
		scores map[string]float64
		want   []string
	}{
		{
			name:   "descending by score",
			scores: map[string]float64{"R1": 1, "R2": 5, "R3": 3},
			want:   []string{"R2", "R3", "R1"},
		},
		{
			name:   "ties break by candidate index",
			scores: map[string]float64{"R1": 2, "R2": 2, "R3": 4},
			want:   []string{"R3", "R1", "R2"},
		},
		{
			name:   "candidates missing from the map are skipped",
			scores: map[string]float64{"R1": 1, "R3": 2},
			want:   []string{"R3", "R1"},
		},
		{
			name:   "all equal keeps generation order",
			scores: map[string]float64{"R1": 1, "R2": 1, "R3": 1},
			want:   []string{"R1", "R2", "R3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RankOrder(tt.scores, candidates))
		})
	}
}

// Renaming candidates must not change any score: all methods key off the
// pair indexes, never the names.
func TestRelabelingSymmetry(t *testing.T) {
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 2},
		{I: 0, J: 2, Margin: -1},
		{I: 1, J: 2, Margin: 1},
		{I: 0, J: 1, Margin: 0},
	}
	original := []Candidate{{Name: "alpha"}, {Name: "beta", Index: 1}, {Name: "gamma", Index: 2}}
	renamed := []Candidate{{Name: "x"}, {Name: "y", Index: 1}, {Name: "z", Index: 2}}
	mapping := map[string]string{"alpha": "x", "beta": "y", "gamma": "z"}

	for _, method := range Methods(200, 3) {
		t.Run(method.Name(), func(t *testing.T) {
			before, err := method.Score(verdicts, original)
			require.NoError(t, err)
			after, err := method.Score(verdicts, renamed)
			require.NoError(t, err)

			for name, score := range before.Scores {
				assert.Equal(t, score, after.Scores[mapping[name]],
					"score for %s changed under renaming", name)
			}
		})
	}
}

// The score map key set must equal the candidate set for every method.
func TestScoreKeySetsMatchCandidates(t *testing.T) {
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 1},
		{I: 1, J: 2, Margin: -2},
	}
	candidates := []Candidate{{Name: "a"}, {Name: "b", Index: 1}, {Name: "c", Index: 2}}

	for _, method := range Methods(50, 1) {
		t.Run(method.Name(), func(t *testing.T) {
			got, err := method.Score(verdicts, candidates)
			require.NoError(t, err)
			assert.Len(t, got.Scores, len(candidates))
			for _, c := range candidates {
				assert.Contains(t, got.Scores, c.Name)
			}
		})
	}
}
