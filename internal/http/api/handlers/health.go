package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rtservizi/fieldtrack/internal/store"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	store *store.Store
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Healthz reports service and database health.
func (h *HealthHandler) Healthz(c *gin.Context) {
	sqlDB, errDB := h.store.DB().DB()
	if errDB != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
