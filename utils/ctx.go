package utils

import "github.com/gin-gonic/gin"

// Context keys populated by the auth middleware after token verification.
const (
	CtxUserID = "userId"
	CtxRole   = "role"
)

// CurrentUserID returns the authenticated user's id, zero when the request
// carries no verified identity.
func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get(CtxUserID)
	id, _ := v.(uint)
	return id
}

// CurrentRole returns the role claim of the authenticated caller.
func CurrentRole(c *gin.Context) string {
	v, _ := c.Get(CtxRole)
	role, _ := v.(string)
	return role
}
