package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/plotforge/plotforge-api/internal/config"
)

// HealthHandler serves the health endpoint
type HealthHandler struct {
	cfg     *config.Config
	version string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, version string) *HealthHandler {
	return &HealthHandler{cfg: cfg, version: version}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": h.version,
		"model":   h.cfg.Model,
	})
}
