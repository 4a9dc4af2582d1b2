package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/codeready-toolchain/agentloop/pkg/services"
)

func TestRespondServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		expectCode int
		expectMsg  string
	}{
		{
			name:       "validation error maps to 400",
			err:        services.NewValidationError("name", "missing field"),
			expectCode: http.StatusBadRequest,
			expectMsg:  "missing field",
		},
		{
			name:       "not found maps to 404",
			err:        fmt.Errorf("wrapped: %w", services.ErrNotFound),
			expectCode: http.StatusNotFound,
			expectMsg:  "resource not found",
		},
		{
			name:       "already exists maps to 409",
			err:        fmt.Errorf("wrapped: %w", services.ErrAlreadyExists),
			expectCode: http.StatusConflict,
			expectMsg:  "already exists",
		},
		{
			name:       "invalid transition maps to 409",
			err:        fmt.Errorf("step is claimed: %w", services.ErrInvalidTransition),
			expectCode: http.StatusConflict,
			expectMsg:  "invalid status transition",
		},
		{
			name:       "concurrent modification maps to 409",
			err:        services.ErrConcurrentModification,
			expectCode: http.StatusConflict,
			expectMsg:  "concurrent modification",
		},
		{
			name:       "invalid input maps to 400",
			err:        fmt.Errorf("bad pattern: %w", services.ErrInvalidInput),
			expectCode: http.StatusBadRequest,
			expectMsg:  "invalid input",
		},
		{
			name:       "unavailable maps to 503",
			err:        fmt.Errorf("no dispatcher: %w", services.ErrUnavailable),
			expectCode: http.StatusServiceUnavailable,
			expectMsg:  "unavailable",
		},
		{
			name:       "unknown error maps to opaque 500",
			err:        fmt.Errorf("something unexpected happened"),
			expectCode: http.StatusInternalServerError,
			expectMsg:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondServiceError(c, tt.err)

			assert.Equal(t, tt.expectCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectMsg)
		})
	}
}

func TestRespondServiceErrorHidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondServiceError(c, fmt.Errorf("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
