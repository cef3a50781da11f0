package handlers

import (
	"net/http"

	"stockflow/internal/common"
	"stockflow/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandlers serves the derived dashboard statistics
type DashboardHandlers struct {
	dashboardService services.DashboardService
}

func NewDashboardHandlers(dashboardService services.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{dashboardService: dashboardService}
}

// GetDashboardStats handles GET /v1/dashboard
func (h *DashboardHandlers) GetDashboardStats(c echo.Context) error {
	stats, err := h.dashboardService.GetDashboardStats(c.Request().Context())
	if err != nil {
		return common.SendServerError(c, "Failed to compute dashboard stats")
	}
	return c.JSON(http.StatusOK, stats)
}
