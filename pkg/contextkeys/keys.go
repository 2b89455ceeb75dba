package contextkeys

import "github.com/gin-gonic/gin"

// Keys under which auth middleware stores the caller's identity in the gin
// context.
const (
	UserIDKey = "userID"
	RoleKey   = "userRole"
)

// UserID returns the authenticated user's id from the gin context.
func UserID(c *gin.Context) (string, bool) {
	v, ok := c.Get(UserIDKey)
	if !ok {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// Role returns the authenticated user's role from the gin context.
func Role(c *gin.Context) (string, bool) {
	v, ok := c.Get(RoleKey)
	if !ok {
		return "", false
	}
	role, ok := v.(string)
	return role, ok && role != ""
}
