package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestReviewerPrefersExplicitBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/",
		strings.NewReader(`{"reviewed_by": "alice"}`))
	c.Request.Header.Set("X-Forwarded-User", "bob")

	assert.Equal(t, "alice", s.reviewer(c))
}

func TestReviewerFallsBackToIdentityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	c.Request.Header.Set("X-Forwarded-User", "bob")

	assert.Equal(t, "bob", s.reviewer(c))
}

func TestReviewerDefaultsToAPIClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := &Server{}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))

	assert.Equal(t, "api-client", s.reviewer(c))
}
