package api

import "github.com/gin-gonic/gin"

// extractAuthor resolves who is making the request from the proxy-injected
// identity headers. Header priority matches the oauth proxy in front of the
// API; unauthenticated callers become "api-client".
func extractAuthor(c *gin.Context) string {
	if user := c.GetHeader("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.GetHeader("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.GetHeader("X-Remote-User"); user != "" {
		return user
	}
	return "api-client"
}
