// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/plenumhq/plenum/ent"
	"github.com/plenumhq/plenum/pkg/council"
)

// DeliberationOptions carries per-request option overrides. Pointer fields
// distinguish "unset, inherit the preset/default" from an explicit false.
type DeliberationOptions struct {
	OutputMode    string   `json:"output_mode,omitempty"`
	Anonymize     *bool    `json:"anonymize,omitempty"`
	Review        *bool    `json:"review,omitempty"`
	Reviewers     []string `json:"reviewers,omitempty"`
	Aggregation   string   `json:"aggregation,omitempty"`
	ChairmanModel string   `json:"chairman_model,omitempty"`
}

// CreateDeliberationRequest contains fields for creating a new deliberation.
// Either Council names a configured preset or Roles supplies the seats
// inline; supplying both is invalid.
type CreateDeliberationRequest struct {
	DeliberationID string               `json:"deliberation_id,omitempty"`
	Task           string               `json:"task"`
	Council        string               `json:"council,omitempty"`
	Roles          []council.Role       `json:"roles,omitempty"`
	Options        *DeliberationOptions `json:"options,omitempty"`
	Author         string               `json:"author,omitempty"`

	// APIKey optionally overrides the configured provider key for this
	// deliberation. It is stashed in memory only and never persisted.
	APIKey string `json:"api_key,omitempty"`
}

// DeliberationFilters contains filtering options for listing deliberations
type DeliberationFilters struct {
	Status         []string   `json:"status,omitempty"`
	CouncilID      string     `json:"council_id,omitempty"`
	Author         string     `json:"author,omitempty"`
	CreatedAfter   *time.Time `json:"created_after,omitempty"`
	CreatedBefore  *time.Time `json:"created_before,omitempty"`
	Search         string     `json:"search,omitempty"`
	SortBy         string     `json:"sort_by,omitempty"`
	SortOrder      string     `json:"sort_order,omitempty"`
	Limit          int        `json:"limit,omitempty"`
	Offset         int        `json:"offset,omitempty"`
	IncludeDeleted bool       `json:"include_deleted,omitempty"`
}

// DeliberationResponse wraps a Deliberation with optional loaded edges
type DeliberationResponse struct {
	*ent.Deliberation
	// Edges can be accessed via Deliberation.Edges when loaded
}

// DeliberationListResponse contains a paginated deliberation list
type DeliberationListResponse struct {
	Deliberations []*ent.Deliberation `json:"deliberations"`
	TotalCount    int                 `json:"total_count"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
}
