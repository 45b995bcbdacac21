package server

import (
	"net/http"
	"strings"
	"time"

	"auction-backend/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key carrying the authenticated user ID.
const ContextUserID = "userID"

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired returns a middleware that restricts a route to authenticated
// users. The token is read from the Authorization header or, failing that,
// from the jwt cookie.
func AuthRequired(tokens *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			tokenStr = strings.TrimPrefix(auth, "Bearer ")
		} else if cookie, err := c.Cookie("jwt"); err == nil {
			tokenStr = cookie
		}

		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized - no token found"})
			return
		}

		userID, err := tokens.Parse(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized - invalid token"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// CallerID returns the authenticated user ID set by AuthRequired.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
