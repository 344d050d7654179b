package shared

import "github.com/gin-gonic/gin"

// Context keys set by middleware.
const (
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
)

// UserID reads the authenticated user id from the gin context.
func UserID(c *gin.Context) (uint, bool) {
	raw, ok := c.Get(ContextKeyUserID)
	if !ok {
		return 0, false
	}
	id, ok := raw.(uint)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// UserRole reads the authenticated user's role.
func UserRole(c *gin.Context) string {
	return c.GetString(ContextKeyUserRole)
}
