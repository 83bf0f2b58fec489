package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/ent/deliberation"
	"github.com/plenumhq/plenum/ent/scoreset"
	"github.com/plenumhq/plenum/pkg/models"
)

// ScoreService retrieves aggregation scores
type ScoreService struct {
	client *ent.Client
}

// NewScoreService creates a new ScoreService
func NewScoreService(client *ent.Client) *ScoreService {
	return &ScoreService{client: client}
}

// GetScores returns every score set computed for a deliberation
func (s *ScoreService) GetScores(ctx context.Context, deliberationID string) (*models.ScoreSetsResponse, error) {
	exists, err := s.client.Deliberation.Query().
		Where(deliberation.IDEQ(deliberationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check deliberation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	sets, err := s.client.ScoreSet.Query().
		Where(scoreset.DeliberationIDEQ(deliberationID)).
		Order(ent.Asc(scoreset.FieldMethod)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get score sets: %w", err)
	}

	return &models.ScoreSetsResponse{
		DeliberationID: deliberationID,
		ScoreSets:      sets,
	}, nil
}

// CompareMethods pivots the score sets into a per-role comparison table
// across every aggregation method.
func (s *ScoreService) CompareMethods(ctx context.Context, deliberationID string) (*models.ScoreComparison, error) {
	resp, err := s.GetScores(ctx, deliberationID)
	if err != nil {
		return nil, err
	}

	methods := make([]string, 0, len(resp.ScoreSets))
	rowByRole := make(map[string]*models.ScoreComparisonRow)
	for _, set := range resp.ScoreSets {
		method := string(set.Method)
		methods = append(methods, method)
		for role, score := range set.Scores {
			row, ok := rowByRole[role]
			if !ok {
				row = &models.ScoreComparisonRow{
					Role:   role,
					Scores: make(map[string]float64),
				}
				rowByRole[role] = row
			}
			row.Scores[method] = score
			if ci, ok := set.ConfidenceIntervals[role]; ok {
				if row.ConfidenceIntervals == nil {
					row.ConfidenceIntervals = make(map[string][2]float64)
				}
				row.ConfidenceIntervals[method] = ci
			}
		}
	}

	rows := make([]models.ScoreComparisonRow, 0, len(rowByRole))
	for _, row := range rowByRole {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Role < rows[j].Role })

	return &models.ScoreComparison{
		DeliberationID: deliberationID,
		Methods:        methods,
		Rows:           rows,
	}, nil
}
