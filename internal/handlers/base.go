package handlers

import (
	"errors"
	"net/http"

	"karmaboard/internal/middleware"
	"karmaboard/internal/services"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

var errBadInput = errors.New("malformed request")

// respondError maps a service error onto a status code. Unknown errors are
// logged and reported as 500 without their detail.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errBadInput),
		errors.Is(err, services.ErrInvalidTargetKind),
		errors.Is(err, services.ErrEmptyContent),
		errors.Is(err, services.ErrParentMismatch):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrTargetNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrNoActor),
		errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrUsernameTaken):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// currentUserID is 0 when nobody is logged in.
func currentUserID(c *gin.Context) uint {
	if user, ok := middleware.CurrentUser(c); ok {
		return user.ID
	}
	return 0
}

// bindJSON decodes the request body or answers 400.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		log.WithError(err).Debug("[http] rejected request body")
		respondError(c, errBadInput)
		return false
	}
	return true
}
