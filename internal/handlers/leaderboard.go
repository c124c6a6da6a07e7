package handlers

import (
	"fmt"
	"net/http"
	"time"

	"karmaboard/internal/config"
	"karmaboard/internal/services"
	"karmaboard/internal/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

const (
	maxLeaderboardLimit = 100
	maxLeaderboardHours = 24 * 365
)

type LeaderboardHandler struct {
	leaderboard *services.LeaderboardService
	cache       *utils.ResponseCache
	cfg         config.LeaderboardConfig
}

func NewLeaderboardHandler(leaderboard *services.LeaderboardService, cache *utils.ResponseCache, cfg config.LeaderboardConfig) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboard: leaderboard, cache: cache, cfg: cfg}
}

// Top serves the karma leaderboard. ?hours overrides the window and ?limit
// the number of entries.
func (h *LeaderboardHandler) Top(c *gin.Context) {
	window := h.cfg.Window
	if hours := c.Query("hours"); hours != "" {
		n := utils.StringToInt(hours, 0)
		if n <= 0 || n > maxLeaderboardHours {
			respondError(c, errBadInput)
			return
		}
		window = time.Duration(n) * time.Hour
	}

	limit := h.cfg.Limit
	if raw := c.Query("limit"); raw != "" {
		limit = utils.StringToInt(raw, 0)
		if limit <= 0 || limit > maxLeaderboardLimit {
			respondError(c, errBadInput)
			return
		}
	}

	gen := h.cache.Generation()
	cacheKey := h.cache.GenerationKey(gen, fmt.Sprintf("leaderboard:%s:%d", window, limit))
	if cached := h.cache.Get(cacheKey); cached != nil {
		if body, ok := cached.(gin.H); ok {
			c.JSON(http.StatusOK, body)
			return
		}
	}

	entries, err := h.leaderboard.TopUsers(c.Request.Context(), window, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	body := gin.H{
		"window":         window.String(),
		"window_seconds": int64(window / time.Second),
		"leaderboard":    entries,
	}
	h.cache.Set(cacheKey, body, h.cfg.CacheTTL)
	log.WithFields(log.Fields{"window": window.String(), "limit": limit, "entries": len(entries)}).
		Debug("[leaderboard] computed")

	c.JSON(http.StatusOK, body)
}
