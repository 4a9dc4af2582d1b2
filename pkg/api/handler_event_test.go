package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBulkAppendRequiresEvents(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/events/bulk", `{"events": []}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "events is required")
}

func TestAppendEventRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/events", `{"event_type":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}
