package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateAgentRequiresSomeField(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPatch, "/api/v1/agents/a-1", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "nothing to update")
}

func TestUpdateAgentRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPatch, "/api/v1/agents/a-1", `{"status": }`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
