package council

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumeratePairs(t *testing.T) {
	tests := []struct {
		name string
		k    int
		want []pairIndex
	}{
		{"no candidates", 0, []pairIndex{}},
		{"single candidate has no pairs", 1, []pairIndex{}},
		{"two candidates", 2, []pairIndex{{0, 1}}},
		{"three candidates", 3, []pairIndex{{0, 1}, {0, 2}, {1, 2}}},
		{"four candidates", 4, []pairIndex{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enumeratePairs(tt.k)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.k*(tt.k-1)/2)
		})
	}
}

func TestSelectJudges(t *testing.T) {
	candidates := []Answer{
		{Role: "R1", Model: "m1", Success: true},
		{Role: "R2", Model: "m2", Success: true},
		{Role: "R3", Model: "m3", Success: true},
	}

	t.Run("defaults to all candidates", func(t *testing.T) {
		judges := selectJudges(candidates, nil)
		assert.Len(t, judges, 3)
		for i, j := range judges {
			assert.Equal(t, i, j.index)
			assert.Equal(t, candidates[i].Role, j.name)
			assert.Equal(t, candidates[i].Model, j.model)
		}
	})

	t.Run("reviewers restrict the set", func(t *testing.T) {
		judges := selectJudges(candidates, []string{"R3", "R1"})
		assert.Len(t, judges, 2)
		// Candidate order, not reviewer-list order; indexes stay dense.
		assert.Equal(t, "R1", judges[0].name)
		assert.Equal(t, 0, judges[0].index)
		assert.Equal(t, "R3", judges[1].name)
		assert.Equal(t, 1, judges[1].index)
	})

	t.Run("unknown reviewer names are skipped", func(t *testing.T) {
		judges := selectJudges(candidates, []string{"R2", "phantom"})
		assert.Len(t, judges, 1)
		assert.Equal(t, "R2", judges[0].name)
	})
}

func TestAssignLabels(t *testing.T) {
	candidates := []Answer{
		{Role: "Critic", Success: true},
		{Role: "Advocate", Success: true},
		{Role: "Skeptic", Success: true},
	}

	labels := assignLabels(candidates)
	assert.Equal(t, map[string]string{
		"Critic":   "A1",
		"Advocate": "A2",
		"Skeptic":  "A3",
	}, labels)
}

func TestDisplayName(t *testing.T) {
	a := Answer{Role: "Critic"}
	labels := map[string]string{"Critic": "A1"}

	assert.Equal(t, "A1", displayName(a, labels, true))
	assert.Equal(t, "Critic", displayName(a, labels, false))
}
