package council

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plenumhq/plenum/pkg/council/rank"
)

func TestBuildJudgePrompt(t *testing.T) {
	prompt := buildJudgePrompt("life, the universe", "A1", "forty-two", "A2", "forty-three")

	assert.Contains(t, prompt, `"life, the universe"`)
	assert.Contains(t, prompt, "--- Response A1 (referred to as A) ---\nforty-two")
	assert.Contains(t, prompt, "--- Response A2 (referred to as B) ---\nforty-three")

	// All five tokens are offered, with the Unicode comparator.
	for _, token := range []string{"[[A≫B]]", "[[A>B]]", "[[A=B]]", "[[B>A]]", "[[B≫A]]"} {
		assert.Contains(t, prompt, token)
	}
}

func TestBuildSynthesisPrompt(t *testing.T) {
	candidates := []Answer{
		{Role: "R1", Content: "first answer", Success: true},
		{Role: "R2", Content: "second answer", Success: true},
	}
	labels := assignLabels(candidates)
	scores := map[string]MethodScores{
		rank.MethodBorda: {Scores: map[string]float64{"R1": 3, "R2": 0}},
	}

	t.Run("anonymized", func(t *testing.T) {
		prompt := buildSynthesisPrompt("the task", candidates, labels, true, scores)
		assert.Contains(t, prompt, "Original question: the task")
		assert.Contains(t, prompt, "--- Perspective A1 ---\nfirst answer")
		assert.Contains(t, prompt, "--- Perspective A2 ---\nsecond answer")
		assert.NotContains(t, prompt, "R1")
		assert.Contains(t, prompt, "borda: A1 (3.00) > A2 (0.00)")
	})

	t.Run("named", func(t *testing.T) {
		prompt := buildSynthesisPrompt("the task", candidates, labels, false, scores)
		assert.Contains(t, prompt, "--- Perspective R1 ---")
		assert.Contains(t, prompt, "borda: R1 (3.00) > R2 (0.00)")
	})

	t.Run("no scores", func(t *testing.T) {
		prompt := buildSynthesisPrompt("the task", candidates, labels, true, nil)
		assert.Contains(t, prompt, "No peer-review rankings are available.")
	})
}

func TestRankingDigest_FixedMethodOrder(t *testing.T) {
	candidates := []Answer{
		{Role: "R1", Content: "a", Success: true},
		{Role: "R2", Content: "b", Success: true},
	}
	labels := assignLabels(candidates)
	scores := map[string]MethodScores{
		rank.MethodELO:          {Scores: map[string]float64{"R1": 1016, "R2": 984}},
		rank.MethodBorda:        {Scores: map[string]float64{"R1": 3, "R2": 0}},
		rank.MethodBradleyTerry: {Scores: map[string]float64{"R1": 2, "R2": 0.5}},
	}

	digest := rankingDigest(candidates, labels, false, scores)
	lines := strings.Split(digest, "\n")
	assert.Len(t, lines, 3)
	// Alphabetical by method name, so the digest is stable run to run.
	assert.True(t, strings.HasPrefix(lines[0], "borda:"))
	assert.True(t, strings.HasPrefix(lines[1], "bradley_terry:"))
	assert.True(t, strings.HasPrefix(lines[2], "elo:"))
}
