package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/ports"
)

type DashboardService interface {
	Summary(ctx context.Context) (*ports.DashboardSummary, error)
}

type DashboardHandler struct {
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// Summary handles GET /v1/dashboard.
//
// @Summary      Dashboard figures
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardSummary
// @Failure      401  {object}  errorBody
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
