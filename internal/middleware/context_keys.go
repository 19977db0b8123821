package middleware

import "github.com/gin-gonic/gin"

// userIDKey carries the authenticated user's ID. A dedicated type keeps it
// from colliding with other context values.
const userIDKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user ID stored by the auth
// middleware, falling back to the request context when the Gin context has
// not been populated (as happens in request-scoped goroutines).
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(userIDKey)); exists {
		userID, ok := val.(string)
		return userID, ok
	}
	if val := c.Request.Context().Value(userIDKey); val != nil {
		userID, ok := val.(string)
		return userID, ok
	}
	return "", false
}
