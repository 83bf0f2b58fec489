package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBordaScore(t *testing.T) {
	candidates := []Candidate{
		{Name: "R1", Index: 0},
		{Name: "R2", Index: 1},
		{Name: "R3", Index: 2},
	}

	tests := []struct {
		name       string
		verdicts   []Verdict
		candidates []Candidate
		want       map[string]float64
	}{
		{
			name:       "single decisive win awards 3 and 0",
			verdicts:   []Verdict{{I: 0, J: 1, Margin: 2}},
			candidates: candidates[:2],
			want:       map[string]float64{"R1": 3, "R2": 0},
		},
		{
			name:       "narrow win awards 1 and 0",
			verdicts:   []Verdict{{I: 0, J: 1, Margin: 1}},
			candidates: candidates[:2],
			want:       map[string]float64{"R1": 1, "R2": 0},
		},
		{
			name:       "tie awards half point to both",
			verdicts:   []Verdict{{I: 0, J: 1, Margin: 0}},
			candidates: candidates[:2],
			want:       map[string]float64{"R1": 0.5, "R2": 0.5},
		},
		{
			name:       "negative margins mirror positive ones",
			verdicts:   []Verdict{{I: 0, J: 1, Margin: -2}, {I: 0, J: 1, Margin: -1}},
			candidates: candidates[:2],
			want:       map[string]float64{"R1": 0, "R2": 4},
		},
		{
			name: "sums accumulate across pairs and judges",
			verdicts: []Verdict{
				{I: 0, J: 1, Margin: 2},
				{I: 0, J: 2, Margin: 1},
				{I: 1, J: 2, Margin: 0},
				{I: 0, J: 1, Margin: 2},
			},
			candidates: candidates,
			want:       map[string]float64{"R1": 7, "R2": 0.5, "R3": 0.5},
		},
		{
			name:       "no verdicts yields zero for every candidate",
			verdicts:   nil,
			candidates: candidates,
			want:       map[string]float64{"R1": 0, "R2": 0, "R3": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Borda{}.Score(tt.verdicts, tt.candidates)
			require.NoError(t, err)
			assert.Equal(t, MethodBorda, got.Method)
			assert.Equal(t, tt.want, got.Scores)
			assert.Nil(t, got.ConfidenceIntervals)
		})
	}
}

func TestBordaAllTiesAreEqual(t *testing.T) {
	// Three judges, every pair tied: every candidate must score the same.
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	var verdicts []Verdict
	for judge := 0; judge < 3; judge++ {
		verdicts = append(verdicts,
			Verdict{I: 0, J: 1, Margin: 0},
			Verdict{I: 0, J: 2, Margin: 0},
			Verdict{I: 1, J: 2, Margin: 0},
		)
	}

	got, err := Borda{}.Score(verdicts, candidates)
	require.NoError(t, err)
	assert.Equal(t, got.Scores["R1"], got.Scores["R2"])
	assert.Equal(t, got.Scores["R2"], got.Scores["R3"])
	// Each candidate sits in 2 pairs per judge at 0.5 points each.
	assert.InDelta(t, 3.0, got.Scores["R1"], 1e-12)
}

func TestBordaDominantCandidateHasMaxScore(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 2},
		{I: 0, J: 2, Margin: 2},
		{I: 1, J: 2, Margin: 1},
	}

	got, err := Borda{}.Score(verdicts, candidates)
	require.NoError(t, err)
	assert.Greater(t, got.Scores["R1"], got.Scores["R2"])
	assert.Greater(t, got.Scores["R1"], got.Scores["R3"])
}

func TestBordaDeterminism(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}}
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 1},
		{I: 0, J: 1, Margin: -2},
		{I: 0, J: 1, Margin: 0},
	}

	first, err := Borda{}.Score(verdicts, candidates)
	require.NoError(t, err)
	second, err := Borda{}.Score(verdicts, candidates)
	require.NoError(t, err)
	assert.Equal(t, first.Scores, second.Scores)
}

func TestBordaRejectsMalformedVerdicts(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}}

	tests := []struct {
		name    string
		verdict Verdict
	}{
		{name: "pair out of range", verdict: Verdict{I: 0, J: 5, Margin: 1}},
		{name: "inverted pair order", verdict: Verdict{I: 1, J: 0, Margin: 1}},
		{name: "self pair", verdict: Verdict{I: 1, J: 1, Margin: 1}},
		{name: "margin too large", verdict: Verdict{I: 0, J: 1, Margin: 3}},
		{name: "margin too small", verdict: Verdict{I: 0, J: 1, Margin: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Borda{}.Score([]Verdict{tt.verdict}, candidates)
			assert.Error(t, err)
		})
	}
}
