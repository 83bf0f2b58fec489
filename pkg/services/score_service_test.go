package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/council"
	"github.com/plenumhq/plenum/pkg/models"
	testdb "github.com/plenumhq/plenum/test/database"
)

func TestScoreService(t *testing.T) {
	client := testdb.NewTestClient(t)
	delService := setupTestDeliberationService(t, client.Client)
	service := NewScoreService(client.Client)
	ctx := context.Background()

	del, err := delService.Create(ctx, models.CreateDeliberationRequest{
		Task:    "score me",
		Council: "general",
	})
	require.NoError(t, err)
	_, err = delService.ClaimNextPending(ctx, "pod-1")
	require.NoError(t, err)

	out := &council.Output{
		Answers: []council.Answer{
			{Role: "analyst", Model: "m", Content: "a", Success: true},
			{Role: "skeptic", Model: "m", Content: "b", Success: true},
		},
		Scores: map[string]council.MethodScores{
			"borda":         {Scores: map[string]float64{"analyst": 2, "skeptic": 0}},
			"bradley_terry": {Scores: map[string]float64{"analyst": 0.8, "skeptic": 0.2}},
			"elo": {
				Scores:              map[string]float64{"analyst": 1216, "skeptic": 1184},
				ConfidenceIntervals: map[string][2]float64{"analyst": {1150, 1280}, "skeptic": {1120, 1250}},
			},
		},
		Metadata: council.Metadata{PrimaryMethod: "borda"},
	}
	require.NoError(t, delService.CompleteInTx(ctx, del.ID, deliberation.StatusCompleted, out, ""))

	t.Run("get scores", func(t *testing.T) {
		resp, err := service.GetScores(ctx, del.ID)
		require.NoError(t, err)
		assert.Equal(t, del.ID, resp.DeliberationID)
		require.Len(t, resp.ScoreSets, 3)
		// Ordered by method name: borda, bradley_terry, elo
		assert.Equal(t, "borda", string(resp.ScoreSets[0].Method))
	})

	t.Run("unknown deliberation", func(t *testing.T) {
		_, err := service.GetScores(ctx, "del_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("method comparison table", func(t *testing.T) {
		cmp, err := service.CompareMethods(ctx, del.ID)
		require.NoError(t, err)
		assert.Len(t, cmp.Methods, 3)
		require.Len(t, cmp.Rows, 2)

		// Rows sorted by role name
		assert.Equal(t, "analyst", cmp.Rows[0].Role)
		assert.Equal(t, float64(2), cmp.Rows[0].Scores["borda"])
		assert.Equal(t, 0.8, cmp.Rows[0].Scores["bradley_terry"])

		ci, ok := cmp.Rows[0].ConfidenceIntervals["elo"]
		require.True(t, ok)
		assert.Equal(t, [2]float64{1150, 1280}, ci)

		// Borda has no confidence intervals
		_, ok = cmp.Rows[0].ConfidenceIntervals["borda"]
		assert.False(t, ok)
	})
}
