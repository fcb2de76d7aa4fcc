package middleware

import (
	"luminax_client/internal/state"
	"luminax_client/internal/util"

	"github.com/gin-gonic/gin"
)

// RequireUser 未登录时返回 401
func RequireUser(store *state.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := store.State().User
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set("user", user)
		c.Next()
	}
}
