package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractAuthor(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		headers  map[string]string
		expected string
	}{
		{
			name:     "no headers returns default",
			headers:  map[string]string{},
			expected: "api-client",
		},
		{
			name: "X-Forwarded-User takes priority",
			headers: map[string]string{
				"X-Forwarded-User":  "alice",
				"X-Forwarded-Email": "alice@example.com",
			},
			expected: "alice",
		},
		{
			name: "X-Forwarded-Email used when no user",
			headers: map[string]string{
				"X-Forwarded-Email": "bob@example.com",
			},
			expected: "bob@example.com",
		},
		{
			name: "X-Remote-User used for proxied API clients",
			headers: map[string]string{
				"X-Remote-User": "system:serviceaccount:my-namespace:my-api-client",
			},
			expected: "system:serviceaccount:my-namespace:my-api-client",
		},
		{
			name: "X-Forwarded-User takes priority over X-Remote-User",
			headers: map[string]string{
				"X-Forwarded-User": "alice",
				"X-Remote-User":    "system:serviceaccount:ns:sa",
			},
			expected: "alice",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.expected, extractAuthor(c))
		})
	}
}
