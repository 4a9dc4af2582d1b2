package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateMissionStatusRequiresStatus(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPatch, "/api/v1/missions/m-1/status", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "status is required")
}

func TestUpdateMissionStatusRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPatch, "/api/v1/missions/m-1/status", `not-json`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
