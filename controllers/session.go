package controllers

import (
	"net/http"

	dbpkg "lumoxcloud/db"
	"lumoxcloud/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const sessionUserKey = "user_id"
const ctxUserKey = "auth_user"

// LoginUser grava o usuário atual na sessão (cookie assinado).
func LoginUser(c *gin.Context, user models.User) error {
	s := sessions.Default(c)
	s.Set(sessionUserKey, user.ID)
	return s.Save()
}

func LogoutUser(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(sessionUserKey)
	return s.Save()
}

// AuthRequired loads the session user from DB into context.
// Unauthenticated requests are redirected to the login page.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		id, ok := s.Get(sessionUserKey).(int64)
		if !ok || id <= 0 {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		db := dbpkg.DBInstance(c)
		if db == nil {
			RespondError(c, "db not configured in context", http.StatusInternalServerError)
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			// stale cookie pointing at a user that no longer exists
			s.Delete(sessionUserKey)
			_ = s.Save()
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// GetUserLogged returns the user loaded by AuthRequired.
func GetUserLogged(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
