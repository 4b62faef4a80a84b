package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RequirePayload blocks post requests that have no payload attached
func RequirePayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength == 0 {
			slog.Debug("RequirePayload Middleware: payload missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "payload missing"})
			return
		}
		c.Next()
	}
}

// HasValidAPIKey guards service to service endpoints, e.g. the notification
// relay between the intake API and the SMTP bridge.
func HasValidAPIKey(validKeys []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request

		keysInHeader, ok := req.Header["Api-Key"]
		if !ok || len(keysInHeader) < 1 {
			slog.Error("A valid API key missing")
			c.JSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
			c.Abort()
			return
		}

		for _, k := range keysInHeader {
			for _, vk := range validKeys {
				if k == vk {
					c.Next()
					return
				}
			}
		}

		// If no keys matched:
		slog.Error("A valid API key missing")
		slog.Debug("Received API keys", slog.String("receivedKeys", strings.Join(keysInHeader, ",")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid API key missing"})
		c.Abort()
	}
}

// RequireSessionID rejects requests that carry no draft session identifier.
// Drafts are scoped per browser session so anonymous visitors can only see
// their own pending submission.
func RequireSessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := strings.TrimSpace(c.GetHeader("Session-Id"))
		if sessionID == "" {
			slog.Debug("RequireSessionID Middleware: session id missing")
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "session id missing"})
			return
		}
		c.Set("sessionID", sessionID)
		c.Next()
	}
}
