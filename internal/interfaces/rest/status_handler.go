package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/internal/application/services"
)

// StatusHandler answers health and feature probes
type StatusHandler struct {
	svcMgr *services.ServiceManager
}

func NewStatusHandler(svcMgr *services.ServiceManager) *StatusHandler {
	return &StatusHandler{svcMgr: svcMgr}
}

// Status handles GET / and GET /api/status
func (h *StatusHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "diet-planner",
		"features": gin.H{
			"food_search": h.svcMgr.Food.Enabled(),
			"scheduler":   h.svcMgr.Scheduler != nil,
		},
	})
}

// Health handles GET /health
func (h *StatusHandler) Health(c *gin.Context) {
	if err := h.svcMgr.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
