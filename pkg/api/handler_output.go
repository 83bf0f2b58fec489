package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/pkg/council"
)

// getOutputHandler handles GET /api/v1/deliberations/:id/output. It returns
// the deliberation result in the engine's wire shape, rebuilt from the
// persisted rows.
func (s *Server) getOutputHandler(c *gin.Context) {
	detail, err := s.deliberations.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if len(detail.Edges.Answers) == 0 {
		respondError(c, http.StatusConflict, "deliberation has no output yet")
		return
	}

	c.JSON(http.StatusOK, buildOutputDocument(detail))
}

// buildOutputDocument reassembles the output document from a deliberation's
// persisted answers, score sets and synthesis. Stage timings are not stored
// per stage, so only the total duration is reported.
func buildOutputDocument(del *ent.Deliberation) *council.Output {
	out := &council.Output{
		Task:    del.Task,
		Answers: make([]council.Answer, 0, len(del.Edges.Answers)),
		Scores:  make(map[string]council.MethodScores, len(del.Edges.ScoreSets)),
	}
	if del.Synthesis != nil {
		out.Synthesis = *del.Synthesis
	}

	labels := make(map[string]string)
	for _, a := range del.Edges.Answers {
		answer := council.Answer{
			Role:       a.Role,
			Model:      a.Model,
			Content:    a.Content,
			Success:    a.Success,
			TokensUsed: a.TokensUsed,
			LatencyMS:  a.LatencyMs,
		}
		if a.ErrorMessage != nil {
			answer.Error = *a.ErrorMessage
		}
		if a.Label != nil {
			labels[a.Role] = *a.Label
		}
		out.Answers = append(out.Answers, answer)
		if a.Success {
			out.Metadata.SuccessfulAnswers++
		} else {
			out.Metadata.FailedAnswers++
		}
	}
	if len(labels) > 0 {
		out.Metadata.Labels = labels
	}

	for _, set := range del.Edges.ScoreSets {
		out.Scores[string(set.Method)] = council.MethodScores{
			Scores:              set.Scores,
			ConfidenceIntervals: set.ConfidenceIntervals,
		}
		if set.Metadata != nil {
			if primary, ok := set.Metadata["primary"].(bool); ok && primary {
				out.Metadata.PrimaryMethod = string(set.Method)
			}
			if raw, ok := set.Metadata["uncontested"].([]interface{}); ok && out.Metadata.Uncontested == nil {
				for _, name := range raw {
					if str, ok := name.(string); ok {
						out.Metadata.Uncontested = append(out.Metadata.Uncontested, str)
					}
				}
			}
		}
	}

	out.Metadata.VerdictCount = len(del.Edges.Verdicts)
	if del.DurationMs != nil {
		out.Metadata.TotalMS = *del.DurationMs
	}
	return out
}
