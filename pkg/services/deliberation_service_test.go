package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/council"
	"github.com/plenumhq/plenum/pkg/models"
	testdb "github.com/plenumhq/plenum/test/database"
)

func inlineRoles() []council.Role {
	return []council.Role{
		{Name: "optimist", Model: "test/model-a"},
		{Name: "pessimist", Model: "test/model-b"},
	}
}

func TestDeliberationService_Create(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestDeliberationService(t, client.Client)
	ctx := context.Background()

	t.Run("creates from council preset", func(t *testing.T) {
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:    "Should we adopt event sourcing?",
			Council: "general",
			Author:  "test@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, deliberation.StatusPending, del.Status)
		require.NotNil(t, del.CouncilID)
		assert.Equal(t, "general", *del.CouncilID)
		require.NotNil(t, del.ChairmanModel)
		assert.Equal(t, "test/chairman", *del.ChairmanModel)
		assert.Len(t, del.Roles, 3)
		assert.Equal(t, "analyst", del.Roles[0]["name"])
	})

	t.Run("creates from inline roles", func(t *testing.T) {
		chairman := "test/chairman"
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:  "Compare caching strategies",
			Roles: inlineRoles(),
			Options: &models.DeliberationOptions{
				ChairmanModel: chairman,
			},
		})
		require.NoError(t, err)
		assert.Nil(t, del.CouncilID)
		assert.Len(t, del.Roles, 2)
		// Snapshot carries the resolved options with engine defaults filled
		assert.Equal(t, "both", del.Options["output_mode"])
		assert.Equal(t, true, del.Options["anonymize"])
	})

	t.Run("falls back to default council", func(t *testing.T) {
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task: "Which queue should we use?",
		})
		require.NoError(t, err)
		require.NotNil(t, del.CouncilID)
		assert.Equal(t, "general", *del.CouncilID)
	})

	t.Run("preset options overlay defaults", func(t *testing.T) {
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:    "Perspectives only",
			Council: "pair",
		})
		require.NoError(t, err)
		assert.Equal(t, "perspectives", del.Options["output_mode"])
	})

	t.Run("request options overlay preset", func(t *testing.T) {
		anonymize := false
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:    "Named judging",
			Council: "general",
			Options: &models.DeliberationOptions{
				Anonymize: &anonymize,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, false, del.Options["anonymize"])
	})

	t.Run("rejects missing task", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateDeliberationRequest{Council: "general"})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "task")
	})

	t.Run("rejects council combined with inline roles", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:    "x",
			Council: "general",
			Roles:   inlineRoles(),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown council preset", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:    "x",
			Council: "ghost",
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "ghost")
	})

	t.Run("rejects single inline role", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:  "x",
			Roles: inlineRoles()[:1],
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects duplicate role names", func(t *testing.T) {
		roles := inlineRoles()
		roles[1].Name = roles[0].Name
		_, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:  "x",
			Roles: roles,
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects synthesis without chairman", func(t *testing.T) {
		_, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:  "x",
			Roles: inlineRoles(),
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
		assert.Contains(t, err.Error(), "chairman")
	})

	t.Run("perspectives mode needs no chairman", func(t *testing.T) {
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:  "x",
			Roles: inlineRoles(),
			Options: &models.DeliberationOptions{
				OutputMode: "perspectives",
			},
		})
		require.NoError(t, err)
		assert.Nil(t, del.ChairmanModel)
	})

	t.Run("rejects duplicate deliberation id", func(t *testing.T) {
		req := models.CreateDeliberationRequest{
			DeliberationID: "del_dupe",
			Task:           "x",
			Council:        "general",
		}
		_, err := service.Create(ctx, req)
		require.NoError(t, err)
		_, err = service.Create(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestDeliberationService_Cancel(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestDeliberationService(t, client.Client)
	ctx := context.Background()

	create := func(t *testing.T) string {
		del, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task:    "cancel me",
			Council: "general",
		})
		require.NoError(t, err)
		return del.ID
	}

	t.Run("pending becomes cancelled", func(t *testing.T) {
		id := create(t)
		del, err := service.Cancel(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, deliberation.StatusCancelled, del.Status)
		assert.NotNil(t, del.CompletedAt)
	})

	t.Run("in_progress becomes cancelling", func(t *testing.T) {
		id := create(t)
		require.NoError(t, service.UpdateStatus(ctx, id, deliberation.StatusInProgress, ""))
		del, err := service.Cancel(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, deliberation.StatusCancelling, del.Status)
	})

	t.Run("terminal is not cancellable", func(t *testing.T) {
		id := create(t)
		require.NoError(t, service.UpdateStatus(ctx, id, deliberation.StatusCompleted, ""))
		_, err := service.Cancel(ctx, id)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("cancelling is not cancellable again", func(t *testing.T) {
		id := create(t)
		require.NoError(t, service.UpdateStatus(ctx, id, deliberation.StatusInProgress, ""))
		_, err := service.Cancel(ctx, id)
		require.NoError(t, err)
		_, err = service.Cancel(ctx, id)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := service.Cancel(ctx, "del_missing")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeliberationService_ClaimNextPending(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestDeliberationService(t, client.Client)
	ctx := context.Background()

	t.Run("returns nil when nothing pending", func(t *testing.T) {
		del, err := service.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		assert.Nil(t, del)
	})

	t.Run("claims oldest first", func(t *testing.T) {
		first, err := service.Create(ctx, models.CreateDeliberationRequest{
			Task: "first", Council: "general",
		})
		require.NoError(t, err)
		// Force distinct created_at ordering
		time.Sleep(10 * time.Millisecond)
		_, err = service.Create(ctx, models.CreateDeliberationRequest{
			Task: "second", Council: "general",
		})
		require.NoError(t, err)

		claimed, err := service.ClaimNextPending(ctx, "pod-1")
		require.NoError(t, err)
		require.NotNil(t, claimed)
		assert.Equal(t, first.ID, claimed.ID)
		assert.Equal(t, deliberation.StatusInProgress, claimed.Status)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.StartedAt)
		assert.NotNil(t, claimed.LastInteractionAt)
	})
}

func TestDeliberationService_List(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestDeliberationService(t, client.Client)
	ctx := context.Background()

	mk := func(t *testing.T, task, author string) *models.CreateDeliberationRequest {
		req := &models.CreateDeliberationRequest{
			Task:    task,
			Council: "general",
			Author:  author,
		}
		_, err := service.Create(ctx, *req)
		require.NoError(t, err)
		return req
	}

	mk(t, "Should the payments service adopt event sourcing?", "alice@example.com")
	mk(t, "Compare caching strategies for the catalog", "bob@example.com")
	mk(t, "Pick a message broker", "alice@example.com")

	t.Run("lists all with pagination defaults", func(t *testing.T) {
		resp, err := service.List(ctx, models.DeliberationFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Deliberations, 3)
		assert.Equal(t, 20, resp.Limit)
	})

	t.Run("filters by author", func(t *testing.T) {
		resp, err := service.List(ctx, models.DeliberationFilters{Author: "alice@example.com"})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.TotalCount)
	})

	t.Run("filters by status", func(t *testing.T) {
		resp, err := service.List(ctx, models.DeliberationFilters{Status: []string{"completed"}})
		require.NoError(t, err)
		assert.Equal(t, 0, resp.TotalCount)
	})

	t.Run("searches task text", func(t *testing.T) {
		resp, err := service.List(ctx, models.DeliberationFilters{Search: "event sourcing"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.TotalCount)
		assert.Contains(t, resp.Deliberations[0].Task, "event sourcing")
	})

	t.Run("short search strings are ignored", func(t *testing.T) {
		resp, err := service.List(ctx, models.DeliberationFilters{Search: "ev"})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})

	t.Run("paginates", func(t *testing.T) {
		resp, err := service.List(ctx, models.DeliberationFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
		assert.Len(t, resp.Deliberations, 2)

		resp, err = service.List(ctx, models.DeliberationFilters{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.Len(t, resp.Deliberations, 1)
	})

	t.Run("excludes soft deleted by default", func(t *testing.T) {
		_, err := service.SoftDeleteOld(ctx, 1)
		require.NoError(t, err) // nothing completed yet, no-op

		resp, err := service.List(ctx, models.DeliberationFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, resp.TotalCount)
	})
}

func TestDeliberationService_CompleteInTx(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestDeliberationService(t, client.Client)
	ctx := context.Background()

	del, err := service.Create(ctx, models.CreateDeliberationRequest{
		Task:    "complete me",
		Council: "general",
	})
	require.NoError(t, err)
	_, err = service.ClaimNextPending(ctx, "pod-1")
	require.NoError(t, err)

	out := &council.Output{
		Task: "complete me",
		Answers: []council.Answer{
			{Role: "analyst", Model: "test/model-a", Content: "answer a", Success: true, TokensUsed: 100, LatencyMS: 1200},
			{Role: "skeptic", Model: "test/model-b", Content: "answer b", Success: true, TokensUsed: 90, LatencyMS: 900},
			{Role: "pragmatist", Model: "test/model-c", Success: false, Error: "upstream timeout"},
		},
		Verdicts: []council.Verdict{
			{Judge: "analyst", JudgeIndex: 0, I: 0, J: 1, Margin: 1, Raw: "[[A≫B]]"},
			{Judge: "skeptic", JudgeIndex: 1, I: 0, J: 1, Margin: -1, Raw: "[[B≫A]]"},
		},
		Scores: map[string]council.MethodScores{
			"borda": {Scores: map[string]float64{"analyst": 1, "skeptic": 1}},
			"elo": {
				Scores:              map[string]float64{"analyst": 1200, "skeptic": 1200},
				ConfidenceIntervals: map[string][2]float64{"analyst": {1100, 1300}, "skeptic": {1100, 1300}},
			},
		},
		Synthesis: "the chairman's view",
		Metadata: council.Metadata{
			PrimaryMethod: "borda",
			Labels:        map[string]string{"analyst": "A1", "skeptic": "A2"},
		},
	}

	require.NoError(t, service.CompleteInTx(ctx, del.ID, deliberation.StatusCompleted, out, ""))

	detail, err := service.GetDetail(ctx, del.ID)
	require.NoError(t, err)
	assert.Equal(t, deliberation.StatusCompleted, detail.Status)
	require.NotNil(t, detail.Synthesis)
	assert.Equal(t, "the chairman's view", *detail.Synthesis)
	assert.NotNil(t, detail.CompletedAt)
	require.NotNil(t, detail.DurationMs)
	assert.GreaterOrEqual(t, *detail.DurationMs, int64(0))

	require.Len(t, detail.Edges.Answers, 3)
	assert.Equal(t, "analyst", detail.Edges.Answers[0].Role)
	assert.Equal(t, 0, detail.Edges.Answers[0].RoleIndex)
	require.NotNil(t, detail.Edges.Answers[0].Label)
	assert.Equal(t, "A1", *detail.Edges.Answers[0].Label)
	assert.False(t, detail.Edges.Answers[2].Success)
	require.NotNil(t, detail.Edges.Answers[2].ErrorMessage)
	assert.Equal(t, "upstream timeout", *detail.Edges.Answers[2].ErrorMessage)

	assert.Len(t, detail.Edges.Verdicts, 2)
	assert.Len(t, detail.Edges.ScoreSets, 2)
}

func TestDeliberationService_Orphans(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := setupTestDeliberationService(t, client.Client)
	ctx := context.Background()

	del, err := service.Create(ctx, models.CreateDeliberationRequest{
		Task: "orphan", Council: "general",
	})
	require.NoError(t, err)
	claimed, err := service.ClaimNextPending(ctx, "pod-old")
	require.NoError(t, err)
	require.NotNil(t, claimed)

	t.Run("fresh heartbeat is not orphaned", func(t *testing.T) {
		orphans, err := service.FindOrphaned(ctx, time.Minute)
		require.NoError(t, err)
		assert.Empty(t, orphans)
	})

	t.Run("stale heartbeat is orphaned", func(t *testing.T) {
		// A zero threshold makes any heartbeat stale
		time.Sleep(10 * time.Millisecond)
		orphans, err := service.FindOrphaned(ctx, 0)
		require.NoError(t, err)
		require.Len(t, orphans, 1)
		assert.Equal(t, del.ID, orphans[0].ID)
	})

	t.Run("startup cleanup fails this pod's rows", func(t *testing.T) {
		count, err := service.FailStartupOrphans(ctx, "pod-old")
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		got, err := service.Get(ctx, del.ID)
		require.NoError(t, err)
		assert.Equal(t, deliberation.StatusTimedOut, got.Status)
	})
}
