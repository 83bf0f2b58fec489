package rank

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBradleyTerryOrdersWinnerAboveLoser(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}}
	verdicts := []Verdict{{I: 0, J: 1, Margin: 2}}

	got, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)
	assert.Equal(t, MethodBradleyTerry, got.Method)
	assert.Greater(t, got.Scores["R1"], got.Scores["R2"])
	assert.True(t, got.Metadata["converged"].(bool))
}

func TestBradleyTerryAllTiesAreEqual(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	var verdicts []Verdict
	for judge := 0; judge < 3; judge++ {
		verdicts = append(verdicts,
			Verdict{I: 0, J: 1, Margin: 0},
			Verdict{I: 0, J: 2, Margin: 0},
			Verdict{I: 1, J: 2, Margin: 0},
		)
	}

	got, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)
	assert.InDelta(t, got.Scores["R1"], got.Scores["R2"], 1e-5)
	assert.InDelta(t, got.Scores["R2"], got.Scores["R3"], 1e-5)
	// Geometric mean 1 with all-equal strengths puts every score at 1.
	assert.InDelta(t, 1.0, got.Scores["R1"], 1e-5)
}

func TestBradleyTerryDominantCandidateHasMaxStrength(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 2},
		{I: 0, J: 2, Margin: 2},
		{I: 1, J: 2, Margin: 0},
	}

	got, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)
	assert.Greater(t, got.Scores["R1"], got.Scores["R2"])
	assert.Greater(t, got.Scores["R1"], got.Scores["R3"])
}

func TestBradleyTerryGeometricMeanIsOne(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 1},
		{I: 0, J: 2, Margin: 2},
		{I: 1, J: 2, Margin: -1},
		{I: 0, J: 1, Margin: 0},
	}

	got, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)

	var logSum float64
	for _, s := range got.Scores {
		require.Greater(t, s, 0.0)
		logSum += math.Log(s)
	}
	assert.InDelta(t, 0.0, logSum, 1e-4)
}

func TestBradleyTerryDeterminismWithinTolerance(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 2},
		{I: 0, J: 2, Margin: -1},
		{I: 1, J: 2, Margin: 1},
	}

	first, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)
	second, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)

	for name := range first.Scores {
		assert.InEpsilon(t, first.Scores[name], second.Scores[name], 1e-6)
	}
}

func TestBradleyTerryUncontestedCandidateGetsMeanAndFlag(t *testing.T) {
	// R3 appears in no verdict: it must receive the mean of the fitted
	// strengths and be flagged in metadata.
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}, {Name: "R3", Index: 2}}
	verdicts := []Verdict{
		{I: 0, J: 1, Margin: 2},
		{I: 0, J: 1, Margin: 1},
	}

	got, err := BradleyTerry{}.Score(verdicts, candidates)
	require.NoError(t, err)

	mean := (got.Scores["R1"] + got.Scores["R2"]) / 2
	assert.InDelta(t, mean, got.Scores["R3"], 1e-9)

	uncontested, ok := got.Metadata["uncontested"].([]string)
	require.True(t, ok, "uncontested metadata should be present")
	assert.Equal(t, []string{"R3"}, uncontested)
}

func TestBradleyTerryNoVerdicts(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}}

	got, err := BradleyTerry{}.Score(nil, candidates)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Scores["R1"])
	assert.Equal(t, 1.0, got.Scores["R2"])
	assert.ElementsMatch(t, []string{"R1", "R2"}, got.Metadata["uncontested"])
}

func TestBradleyTerryRejectsMalformedVerdicts(t *testing.T) {
	candidates := []Candidate{{Name: "R1"}, {Name: "R2", Index: 1}}
	_, err := BradleyTerry{}.Score([]Verdict{{I: 0, J: 1, Margin: 7}}, candidates)
	assert.Error(t, err)
}
