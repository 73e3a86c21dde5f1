package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated user id stored on the request by
// the auth middleware, or 0 when the request carries none. The middleware
// always stores a uint, so no other types are considered.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}
