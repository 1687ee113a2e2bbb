package router

import (
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stemsi/aptify-backend/internal/config"
	"github.com/stemsi/aptify-backend/internal/handler"
	"github.com/stemsi/aptify-backend/internal/logger"
	"github.com/stemsi/aptify-backend/internal/middleware"
	"github.com/stemsi/aptify-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Question *handler.QuestionHandler
	Health   *handler.HealthHandler
	Page     *handler.PageHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Request ID comes first so the recovery and access logs can carry it.
	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Ctx(c.Request.Context(), log).Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")
		response.AbortFail(c, http.StatusInternalServerError, response.ErrInternal)
	}))

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(middleware.Brotli())

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})
	router.NoMethod(func(c *gin.Context) {
		response.Fail(c, http.StatusMethodNotAllowed, response.ErrMethodNotAllowed)
	})

	// Health check.
	router.GET("/health", handlers.Health.Health)

	// ─── 1. API Group ──────────────────────────────────────────────────
	api := router.Group("/api")
	api.Use(middleware.NoStore())
	{
		api.POST("/questions", handlers.Question.GetQuestions)
	}

	// ─── 2. Browser Pages (optional) ───────────────────────────────────
	if cfg.StaticDir != "" {
		static := router.Group("/static")
		static.Use(middleware.CacheControl(cfg.StaticMaxAge))
		{
			static.Static("/", cfg.StaticDir)
		}
	}

	if cfg.TemplateDir != "" {
		router.LoadHTMLGlob(filepath.Join(cfg.TemplateDir, "*.html"))

		pages := router.Group("/")
		{
			pages.GET("/", handlers.Page.Index)
			pages.GET("/practice", handlers.Page.Practice)
			pages.GET("/quiz", handlers.Page.Quiz)
			pages.GET("/results", handlers.Page.Results)
			pages.GET("/leaderboard", handlers.Page.Leaderboard)
			pages.GET("/about", handlers.Page.About)
		}
	}

	return router
}
