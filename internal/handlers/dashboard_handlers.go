package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"finboard/internal/common"
	"finboard/internal/services"
)

// DashboardHandlers serves the dashboard overview and cards.
type DashboardHandlers struct {
	dashboardService services.DashboardService
}

func NewDashboardHandlers(dashboardService services.DashboardService) *DashboardHandlers {
	return &DashboardHandlers{dashboardService: dashboardService}
}

// GetOverview handles GET /dashboard/overview
func (h *DashboardHandlers) GetOverview(c echo.Context) error {
	ctx := c.Request().Context()

	overview, err := h.dashboardService.Overview(ctx)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, overview)
}

// GetCards handles GET /dashboard/cards. ?fresh=1 bypasses the cache.
func (h *DashboardHandlers) GetCards(c echo.Context) error {
	ctx := c.Request().Context()

	noStore := c.QueryParam("fresh") != ""

	cards, err := h.dashboardService.Cards(ctx, noStore)
	if err != nil {
		return common.SendServerError(c, err.Error())
	}

	return c.JSON(http.StatusOK, cards)
}
