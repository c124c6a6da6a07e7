package router

import (
	"fmt"
	"net/http"

	"karmaboard/internal/config"
	"karmaboard/internal/handlers"
	"karmaboard/internal/middleware"
	"karmaboard/internal/services"
	"karmaboard/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const sessionName = "karmaboard_session"

// Setup wires services, middleware and routes on a new engine.
func Setup(conn *gorm.DB, cfg config.Config) (*gin.Engine, error) {
	cache, err := utils.NewResponseCache(cfg.Leaderboard.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}

	users := services.NewUserService(conn)
	posts := services.NewPostService(conn)
	comments := services.NewCommentService(conn)
	likes := services.NewLikeService(conn)
	leaderboard := services.NewLeaderboardService(conn)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(middleware.LoadUser(users))

	authHandler := handlers.NewAuthHandler(users)
	postHandler := handlers.NewPostHandler(posts)
	commentHandler := handlers.NewCommentHandler(comments)
	likeHandler := handlers.NewLikeHandler(likes, cache)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboard, cache, cfg.Leaderboard)

	api := r.Group("/api")
	{
		api.POST("/users", authHandler.Register)
		api.POST("/session", authHandler.Login)
		api.DELETE("/session", authHandler.Logout)

		api.GET("/posts", postHandler.List)
		api.GET("/posts/:id", postHandler.Detail)
		api.GET("/leaderboard", leaderboardHandler.Top)
	}

	authorized := api.Group("")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/posts", postHandler.Create)
		authorized.POST("/comments", commentHandler.Create)
		authorized.POST("/likes", likeHandler.Like)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r, nil
}
