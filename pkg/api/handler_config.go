package api

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/plenumhq/plenum/pkg/config"
)

// CouncilSummary describes one council preset for the dashboard.
type CouncilSummary struct {
	ID          string                `json:"id"`
	Description string                `json:"description,omitempty"`
	Roles       []string              `json:"roles"`
	Chairman    string                `json:"chairman,omitempty"`
	Options     *config.OptionsConfig `json:"options,omitempty"`
	Default     bool                  `json:"default,omitempty"`
}

// RoleSummary describes one role preset for the dashboard. The system
// prompt is included so callers can preview what a seat will be told.
type RoleSummary struct {
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Model        string  `json:"model"`
	SystemPrompt string  `json:"system_prompt,omitempty"`
	Weight       float64 `json:"weight,omitempty"`
}

// listCouncilsHandler handles GET /api/v1/config/councils.
func (s *Server) listCouncilsHandler(c *gin.Context) {
	all := s.cfg.CouncilRegistry.GetAll()

	councils := make([]CouncilSummary, 0, len(all))
	for id, cc := range all {
		councils = append(councils, CouncilSummary{
			ID:          id,
			Description: cc.Description,
			Roles:       cc.Roles,
			Chairman:    cc.Chairman,
			Options:     cc.Options,
			Default:     s.cfg.Defaults != nil && s.cfg.Defaults.Council == id,
		})
	}
	sort.Slice(councils, func(i, j int) bool { return councils[i].ID < councils[j].ID })

	c.JSON(http.StatusOK, gin.H{"councils": councils})
}

// listRolesHandler handles GET /api/v1/config/roles.
func (s *Server) listRolesHandler(c *gin.Context) {
	all := s.cfg.RoleRegistry.GetAll()

	roles := make([]RoleSummary, 0, len(all))
	for name, rc := range all {
		roles = append(roles, RoleSummary{
			Name:         name,
			Description:  rc.Description,
			Model:        rc.Model,
			SystemPrompt: rc.SystemPrompt,
			Weight:       rc.Weight,
		})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })

	c.JSON(http.StatusOK, gin.H{"roles": roles})
}
