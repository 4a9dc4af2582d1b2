package api

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/agentloop/pkg/config"
	"github.com/codeready-toolchain/agentloop/pkg/database"
	"github.com/codeready-toolchain/agentloop/pkg/dispatch"
	"github.com/codeready-toolchain/agentloop/pkg/events"
)

// newTestServer builds a server with no database behind it. Only routes
// that reject before touching the service layer may be exercised.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewServer(&config.Settings{Debug: true}, &database.Client{},
		dispatch.NewRegistry(slog.Default()), nil, slog.Default())
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router().ServeHTTP(w, req)
	return w
}

func TestHealthzEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), "timestamp")
}

func TestUnknownRouteReturns404(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/v1/nope", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/metrics", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}

func TestEventTypesEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/v1/events/types", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "step.completed")
	assert.Contains(t, w.Body.String(), "mission.escalated")
}

func TestPluginEndpointsWithoutManager(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/v1/plugins", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"plugins":[]`)

	w = doRequest(s, http.MethodGet, "/api/v1/plugins/tabs", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"tabs":[]`)
}

func TestTickWithoutOrchestratorReturns503(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/orchestrator/tick", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "orchestrator not available")
}

func TestWorkCycleWithoutOrchestratorReturns503(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/orchestrator/work-cycle/agent-1", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestOrchestratorStatus(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/v1/orchestrator/status", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"running"`)
	assert.Contains(t, w.Body.String(), "agentloop/")
}

func TestEventStreamWithoutManagerReturns503(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodGet, "/api/v1/events/stream", "")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "event stream not available")
}

func TestEventStreamRejectsBadSince(t *testing.T) {
	s := newTestServer(t)
	s.SetEventsManager(events.NewManager())

	w := doRequest(s, http.MethodGet, "/api/v1/events/stream?since=yesterday", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC3339")
}
