package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plotforge/plotforge-api/internal/api/handlers"
	"github.com/plotforge/plotforge-api/internal/api/middleware"
	"github.com/plotforge/plotforge-api/internal/config"
)

func SetupRouter(cfg *config.Config, version string) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Recovery middleware (must be first)
	router.Use(middleware.RecoverWithSentry())

	// Sentry middleware for error tracking
	router.Use(middleware.SentryMiddleware())

	// Request tracking and structured logging
	router.Use(middleware.RequestTracking())

	// CORS middleware
	router.Use(middleware.CORS())

	// The planning endpoint is write-only; anything else on a known path gets
	// a plain-text nudge.
	router.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, "Use POST")
	})

	// Health check
	healthHandler := handlers.NewHealthHandler(cfg, version)
	router.GET("/health", healthHandler.HealthCheck)

	// Story planning endpoint
	storyHandler := handlers.NewStoryHandler(cfg)
	v1 := router.Group("/api/v1")
	v1.POST("/story/plan", storyHandler.PlanStory)

	return router
}
