package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/persistence"
)

// SystemHandler serves liveness and readiness probes.
type SystemHandler struct {
	db *persistence.Database
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database) *SystemHandler {
	return &SystemHandler{db: db}
}

// RegisterRoutes registers the system routes on the engine root.
func (h *SystemHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Healthz)
}

// Healthz reports process liveness and order store reachability.
func (h *SystemHandler) Healthz(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  "order store unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
