package models

import "github.com/plenumhq/plenum/ent"

// ScoreSetsResponse contains all score sets computed for a deliberation
type ScoreSetsResponse struct {
	DeliberationID string          `json:"deliberation_id"`
	ScoreSets      []*ent.ScoreSet `json:"score_sets"`
}

// ScoreComparisonRow is one role's scores across every aggregation method.
// Confidence intervals are present only for methods that compute them.
type ScoreComparisonRow struct {
	Role                string                `json:"role"`
	Scores              map[string]float64    `json:"scores"`
	ConfidenceIntervals map[string][2]float64 `json:"confidence_intervals,omitempty"`
}

// ScoreComparison is the method comparison table for a deliberation
type ScoreComparison struct {
	DeliberationID string               `json:"deliberation_id"`
	Methods        []string             `json:"methods"`
	Rows           []ScoreComparisonRow `json:"rows"`
}
