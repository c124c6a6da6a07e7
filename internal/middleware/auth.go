package middleware

import (
	"errors"
	"net/http"

	"karmaboard/internal/models"
	"karmaboard/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	CheckUserKey  = "user"
	SessionUserID = "user_id"
)

// AuthRequired rejects requests without a logged in user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": services.ErrNoActor.Error()})
			return
		}
		c.Next()
	}
}

// LoadUser resolves the session's user id to a user and stores it in the
// context. A session pointing at a deleted user is cleared.
func LoadUser(users *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		id, ok := session.Get(SessionUserID).(uint)
		if !ok || id == 0 {
			c.Next()
			return
		}

		user, err := users.Get(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(CheckUserKey, user)
		case errors.Is(err, services.ErrNoActor):
			session.Delete(SessionUserID)
			_ = session.Save()
		default:
			log.WithError(err).Error("[auth] failed to load session user")
		}
		c.Next()
	}
}

// CurrentUser returns the user stored by LoadUser, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
