package mw

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminTokenHeader carries the operator capability token.
const AdminTokenHeader = "X-Admin-Token"

// RequireAdmin gates a route group behind the shared operator token, compared
// in constant time. Handlers behind it only ever see authorized requests.
func RequireAdmin(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(supplied), []byte(token)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid admin token"})
			return
		}
		c.Next()
	}
}
