package handlers

import (
	"net/http"

	"karmaboard/internal/models"
	"karmaboard/internal/services"
	"karmaboard/internal/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type LikeHandler struct {
	likes *services.LikeService
	cache *utils.ResponseCache
}

func NewLikeHandler(likes *services.LikeService, cache *utils.ResponseCache) *LikeHandler {
	return &LikeHandler{likes: likes, cache: cache}
}

// Like records a like. A repeated like is a successful no-op answered with
// 200 instead of 201.
func (h *LikeHandler) Like(c *gin.Context) {
	var req struct {
		Type string `json:"type" binding:"required"`
		ID   uint   `json:"id"`
	}
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	outcome, err := h.likes.Like(ctx, currentUserID(c), req.Type, req.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if outcome == services.LikeCreated {
		status = http.StatusCreated
		h.cache.Invalidate()
	}

	target := models.LikeTarget{Type: models.TargetType(req.Type), ID: req.ID}
	body := gin.H{
		"status": outcome.String(),
		"target": target.String(),
	}

	// The like is already stored; a failed count only drops likes_count.
	count, err := h.likes.Count(ctx, target)
	if err != nil {
		log.WithError(err).WithField("target", target.String()).Warn("[likes] failed to count likes after like")
	} else {
		body["likes_count"] = count
	}

	c.JSON(status, body)
}
