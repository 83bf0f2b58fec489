package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body HealthResponse
	decodeBody(t, rec, &body)
	assert.Equal(t, healthStatusHealthy, body.Status)
	assert.NotEmpty(t, body.Version)
	require.Contains(t, body.Checks, "database")
	assert.Equal(t, healthStatusHealthy, body.Checks["database"].Status)
	// No worker pool attached: the check is simply absent.
	assert.NotContains(t, body.Checks, "worker_pool")
}

func TestWS_UnavailableWithoutManager(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.doJSON(t, http.MethodGet, "/api/v1/ws", nil, nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
