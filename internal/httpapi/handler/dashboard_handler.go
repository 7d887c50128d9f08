package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zooarcadia/internal/httpapi/middleware"
	"zooarcadia/internal/httpapi/service"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup, g middleware.Guard) {
	router.GET("/dashboard/stats", append(g.Check("dashboard.stats"), h.Stats)...)
}

// Stats returns the popularity ranking for the admin dashboard.
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	summary, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
