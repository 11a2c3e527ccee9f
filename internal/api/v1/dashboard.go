package v1

import (
	"net/http"

	"github.com/deespora/backoffice/internal/logger"
	"github.com/deespora/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// @Summary Dashboard
// @Description Counters and events for the dashboard. Kinds that could not be fetched count as empty.
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.Dashboard
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.dashboardService.Load(c.Request.Context()))
}
