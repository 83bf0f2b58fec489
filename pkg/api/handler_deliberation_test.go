package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/council"
)

func TestCreateDeliberation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations", map[string]interface{}{
		"task":    "Should we shard the primary database?",
		"council": "pair",
	}, map[string]string{"X-Forwarded-User": "alice"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateDeliberationResponse
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.DeliberationID)
	assert.Equal(t, "pending", resp.Status)

	stored, err := ts.deliberations.Get(context.Background(), resp.DeliberationID)
	require.NoError(t, err)
	require.NotNil(t, stored.Author)
	assert.Equal(t, "alice", *stored.Author)
}

func TestCreateDeliberation_InlineRoles(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations", map[string]interface{}{
		"task": "Compare the caching strategies",
		"roles": []map[string]interface{}{
			{"name": "optimist", "model": "test/model-a"},
			{"name": "pessimist", "model": "test/model-b"},
		},
		"options": map[string]interface{}{"chairman_model": "test/chairman"},
	}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateDeliberation_ValidationError(t *testing.T) {
	ts := newTestServer(t)

	// No task.
	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations", map[string]interface{}{
		"council": "pair",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown council preset.
	rec = ts.doJSON(t, http.MethodPost, "/api/v1/deliberations", map[string]interface{}{
		"task":    "anything",
		"council": "no-such-council",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetDeliberation(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/"+id, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	decodeBody(t, rec, &body)
	assert.Equal(t, id, body["id"])
	assert.Equal(t, "Should we shard the primary database?", body["task"])
}

func TestGetDeliberation_NotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/del_missing", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListDeliberations(t *testing.T) {
	ts := newTestServer(t)
	ts.createDeliberation(t)
	ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations?page=1&page_size=1", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Deliberations []map[string]interface{} `json:"deliberations"`
		TotalCount    int                      `json:"total_count"`
	}
	decodeBody(t, rec, &body)
	assert.Len(t, body.Deliberations, 1)
	assert.Equal(t, 2, body.TotalCount)
}

func TestListDeliberations_StatusFilter(t *testing.T) {
	ts := newTestServer(t)
	ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations?status=completed", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		TotalCount int `json:"total_count"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 0, body.TotalCount)
}

func TestListDeliberations_InvalidParams(t *testing.T) {
	ts := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest,
		ts.doJSON(t, http.MethodGet, "/api/v1/deliberations?sort_by=task", nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		ts.doJSON(t, http.MethodGet, "/api/v1/deliberations?status=bogus", nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		ts.doJSON(t, http.MethodGet, "/api/v1/deliberations?search=ab", nil, nil).Code)
	assert.Equal(t, http.StatusBadRequest,
		ts.doJSON(t, http.MethodGet, "/api/v1/deliberations?start_date=yesterday", nil, nil).Code)
}

func TestActiveDeliberations(t *testing.T) {
	ts := newTestServer(t)
	ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/active", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 1, body.Count)
}

func TestCancelDeliberation_Pending(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/cancel", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stored, err := ts.deliberations.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCancelled, stored.Status)
}

func TestCancelDeliberation_Terminal(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createDeliberation(t)

	require.NoError(t, ts.deliberations.UpdateStatus(context.Background(), id, deliberation.StatusCompleted, ""))

	rec := ts.doJSON(t, http.MethodPost, "/api/v1/deliberations/"+id+"/cancel", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetScores_NotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/del_missing/scores", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetOutput(t *testing.T) {
	ts := newTestServer(t)
	ctx := context.Background()
	id := ts.createDeliberation(t)

	claimed, err := ts.deliberations.ClaimNextPending(ctx, "pod-api-test")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	out := &council.Output{
		Task: "Should we shard the primary database?",
		Answers: []council.Answer{
			{Role: "analyst", Model: "test/model-a", Content: "Yes, eventually.", Success: true, TokensUsed: 10},
			{Role: "skeptic", Model: "test/model-b", Content: "Not yet.", Success: true, TokensUsed: 12},
		},
		Scores: map[string]council.MethodScores{
			"borda": {Scores: map[string]float64{"analyst": 1, "skeptic": 0}},
			"elo": {
				Scores:              map[string]float64{"analyst": 1516, "skeptic": 1484},
				ConfidenceIntervals: map[string][2]float64{"analyst": {1490, 1540}, "skeptic": {1460, 1510}},
			},
		},
		Synthesis: "Shard later.",
		Metadata: council.Metadata{
			PrimaryMethod:     "borda",
			SuccessfulAnswers: 2,
		},
		Verdicts: []council.Verdict{
			{Judge: "analyst", JudgeIndex: 0, I: 0, J: 1, Margin: 1},
		},
	}
	require.NoError(t, ts.deliberations.CompleteInTx(ctx, id, deliberation.StatusCompleted, out, ""))

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/"+id+"/output", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Task    string `json:"task"`
		Results []struct {
			Role    string `json:"role"`
			Success bool   `json:"success"`
		} `json:"results"`
		AggregationScores map[string]struct {
			Scores              map[string]float64    `json:"scores"`
			ConfidenceIntervals map[string][2]float64 `json:"confidence_intervals"`
		} `json:"aggregation_scores"`
		Synthesis string `json:"synthesis"`
		Metadata  struct {
			PrimaryMethod     string `json:"primary_method"`
			SuccessfulAnswers int    `json:"successful_answers"`
			VerdictCount      int    `json:"verdict_count"`
		} `json:"metadata"`
	}
	decodeBody(t, rec, &doc)

	assert.Equal(t, "Should we shard the primary database?", doc.Task)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "analyst", doc.Results[0].Role)
	assert.Equal(t, "Shard later.", doc.Synthesis)
	require.Contains(t, doc.AggregationScores, "borda")
	require.Contains(t, doc.AggregationScores, "elo")
	assert.NotNil(t, doc.AggregationScores["elo"].ConfidenceIntervals)
	assert.Equal(t, "borda", doc.Metadata.PrimaryMethod)
	assert.Equal(t, 2, doc.Metadata.SuccessfulAnswers)
	assert.Equal(t, 1, doc.Metadata.VerdictCount)
}

func TestGetOutput_NotReady(t *testing.T) {
	ts := newTestServer(t)
	id := ts.createDeliberation(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/deliberations/"+id+"/output", nil, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
