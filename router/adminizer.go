package router

import (
	"net/http"

	"lumoxcloud/controllers"

	"github.com/gin-gonic/gin"
)

// Adminizer blocks access when user is not admin.
// No redirect here: non-admins get a bare forbidden response.
func Adminizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := controllers.GetUserLogged(c)
		if !ok {
			controllers.RespondError(c, "unauthorized", http.StatusUnauthorized)
			c.Abort()
			return
		}
		if !user.Admin {
			controllers.RespondError(c, "forbidden", http.StatusForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
