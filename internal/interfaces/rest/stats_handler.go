package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dietplanner/backend/internal/application/services"
)

// StatsHandler exposes the admin usage overview
type StatsHandler struct {
	svcMgr *services.ServiceManager
}

func NewStatsHandler(svcMgr *services.ServiceManager) *StatsHandler {
	return &StatsHandler{svcMgr: svcMgr}
}

// Usage handles GET /api/stats/usage
func (h *StatsHandler) Usage(c *gin.Context) {
	summary, err := h.svcMgr.Stats.Usage(c.Request.Context())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"usage": summary})
}
