package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/pkg/models"
)

// CreateDeliberationResponse is returned by POST /api/v1/deliberations.
type CreateDeliberationResponse struct {
	DeliberationID string `json:"deliberation_id"`
	Status         string `json:"status"`
}

// CancelResponse is returned by POST /api/v1/deliberations/:id/cancel.
type CancelResponse struct {
	DeliberationID string `json:"deliberation_id"`
	Message        string `json:"message"`
}

// createDeliberationHandler handles POST /api/v1/deliberations.
func (s *Server) createDeliberationHandler(c *gin.Context) {
	var req models.CreateDeliberationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.Author = extractAuthor(c)

	// The key never touches the database; it lives in the stash until the
	// deliberation reaches a terminal state.
	apiKey := req.APIKey
	req.APIKey = ""

	del, err := s.deliberations.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if apiKey != "" && s.keyStash != nil {
		s.keyStash.Put(del.ID, apiKey)
	}

	c.JSON(http.StatusCreated, &CreateDeliberationResponse{
		DeliberationID: del.ID,
		Status:         string(del.Status),
	})
}

// getDeliberationHandler handles GET /api/v1/deliberations/:id.
func (s *Server) getDeliberationHandler(c *gin.Context) {
	detail, err := s.deliberations.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// listDeliberationsHandler handles GET /api/v1/deliberations.
func (s *Server) listDeliberationsHandler(c *gin.Context) {
	filters, ok := parseListFilters(c)
	if !ok {
		return
	}

	result, err := s.deliberations.List(c.Request.Context(), filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// parseListFilters maps dashboard query parameters onto list filters,
// writing a 400 response and returning false on invalid input.
func parseListFilters(c *gin.Context) (models.DeliberationFilters, bool) {
	filters := models.DeliberationFilters{
		SortBy:    "created_at",
		SortOrder: "desc",
	}

	// Pagination.
	page := 1
	pageSize := 25
	if v := c.Query("page"); v != "" {
		if p, err := strconv.Atoi(v); err == nil && p > 0 {
			page = p
		}
	}
	if v := c.Query("page_size"); v != "" {
		if ps, err := strconv.Atoi(v); err == nil && ps > 0 && ps <= 100 {
			pageSize = ps
		}
	}
	filters.Limit = pageSize
	filters.Offset = (page - 1) * pageSize

	// Sorting.
	if v := c.Query("sort_by"); v != "" {
		switch v {
		case "created_at", "status", "council_id", "author", "duration":
			filters.SortBy = v
		default:
			respondError(c, http.StatusBadRequest,
				"invalid sort_by: must be created_at, status, council_id, author, or duration")
			return filters, false
		}
	}
	if v := c.Query("sort_order"); v != "" {
		switch v {
		case "asc", "desc":
			filters.SortOrder = v
		default:
			respondError(c, http.StatusBadRequest, "invalid sort_order: must be asc or desc")
			return filters, false
		}
	}

	// Filters.
	if v := c.Query("status"); v != "" {
		statuses := strings.Split(v, ",")
		for _, st := range statuses {
			if err := deliberation.StatusValidator(deliberation.Status(st)); err != nil {
				respondError(c, http.StatusBadRequest, "invalid status: "+st)
				return filters, false
			}
		}
		filters.Status = statuses
	}
	filters.CouncilID = c.Query("council_id")
	filters.Author = c.Query("author")
	if v := c.Query("search"); v != "" {
		if len(v) < 3 {
			respondError(c, http.StatusBadRequest, "search query must be at least 3 characters")
			return filters, false
		}
		filters.Search = v
	}

	// Date range.
	if v := c.Query("start_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid start_date: must be RFC3339")
			return filters, false
		}
		filters.CreatedAfter = &t
	}
	if v := c.Query("end_date"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid end_date: must be RFC3339")
			return filters, false
		}
		filters.CreatedBefore = &t
	}

	return filters, true
}

// activeDeliberationsHandler handles GET /api/v1/deliberations/active.
func (s *Server) activeDeliberationsHandler(c *gin.Context) {
	active, err := s.deliberations.ListActive(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliberations": active, "count": len(active)})
}

// getScoresHandler handles GET /api/v1/deliberations/:id/scores.
func (s *Server) getScoresHandler(c *gin.Context) {
	scores, err := s.scores.GetScores(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, scores)
}

// cancelDeliberationHandler handles POST /api/v1/deliberations/:id/cancel.
func (s *Server) cancelDeliberationHandler(c *gin.Context) {
	deliberationID := c.Param("id")

	// Move the row toward cancellation (pending → cancelled,
	// in_progress → cancelling).
	_, cancelErr := s.deliberations.Cancel(c.Request.Context(), deliberationID)

	// Always try to cancel on this pod, regardless of the DB result.
	if s.workerPool != nil {
		s.workerPool.CancelDeliberation(deliberationID)
	}

	// A chat turn may be running even when the deliberation itself is
	// already terminal.
	chatCancelled := false
	if s.chatExecutor != nil {
		chatCancelled = s.chatExecutor.CancelByDeliberationID(deliberationID)
	}

	if cancelErr != nil && !chatCancelled {
		respondServiceError(c, cancelErr)
		return
	}

	c.JSON(http.StatusOK, &CancelResponse{
		DeliberationID: deliberationID,
		Message:        "Deliberation cancellation requested",
	})
}
