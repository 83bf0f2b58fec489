package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCouncils(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/config/councils", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Councils []CouncilSummary `json:"councils"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Councils, 1)
	assert.Equal(t, "pair", body.Councils[0].ID)
	assert.Equal(t, []string{"analyst", "skeptic"}, body.Councils[0].Roles)
	assert.Equal(t, "test/chairman", body.Councils[0].Chairman)
	assert.True(t, body.Councils[0].Default)
}

func TestListRoles(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/config/roles", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Roles []RoleSummary `json:"roles"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Roles, 2)
	assert.Equal(t, "analyst", body.Roles[0].Name)
	assert.Equal(t, "test/model-a", body.Roles[0].Model)
	assert.Equal(t, "skeptic", body.Roles[1].Name)
}
