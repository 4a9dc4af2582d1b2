package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaimStepRequiresAgentID(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/steps/step-1/claim", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "agent_id is required")
}

func TestClaimStepRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/steps/step-1/claim", `{"agent_id": 42`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestStartStepRequiresAgentID(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/steps/step-1/start", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "agent_id is required")
}
