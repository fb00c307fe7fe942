// internal/middleware/acting_user.go
package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const actingUserKey = "acting_user_id"

// ActingUser reads the authenticated user id that the auth gateway injects
// as X-User-ID. A missing or malformed header resolves to user 0 (the
// unknown/system actor) rather than rejecting the request: authentication
// itself happens upstream.
func ActingUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID int64
		if raw := c.GetHeader("X-User-ID"); raw != "" {
			if id, err := strconv.ParseInt(raw, 10, 64); err == nil && id > 0 {
				userID = id
			}
		}
		c.Set(actingUserKey, userID)
		c.Next()
	}
}

// GetActingUserID returns the acting user id set by ActingUser, 0 when
// absent.
func GetActingUserID(c *gin.Context) int64 {
	return c.GetInt64(actingUserKey)
}
