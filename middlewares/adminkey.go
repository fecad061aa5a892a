package middlewares

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"backend/commons/apierrors"
)

// AdminKey gates a route group behind the x-admin-key header. An empty server
// key locks the group entirely rather than leaving it open.
func AdminKey(serverKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("x-admin-key")
		if serverKey == "" || supplied == "" ||
			subtle.ConstantTimeCompare([]byte(supplied), []byte(serverKey)) != 1 {
			apierrors.Abort(c, apierrors.Unauthorized())
			return
		}
		c.Next()
	}
}
