package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// PricingService asks the advisor for a room price.
type PricingService interface {
	Suggest(ctx context.Context, roomID string) (*ports.PriceAdvice, error)
}

type PricingHandler struct {
	service PricingService
}

func NewPricingHandler(service PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

type suggestionRequest struct {
	RoomID string `json:"room_id" validate:"required"`
}

// Suggest handles POST /v1/pricing/suggestions.
//
// @Summary      Suggest a nightly price
// @Description  Sends the room's booking history and current demand to the pricing advisor.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      suggestionRequest  true  "Room"
// @Success      200   {object}  ports.PriceAdvice
// @Failure      422   {object}  errorBody
// @Failure      502   {object}  errorBody
// @Router       /v1/pricing/suggestions [post]
func (h *PricingHandler) Suggest(c echo.Context) error {
	var req suggestionRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	advice, err := h.service.Suggest(c.Request().Context(), req.RoomID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, advice)
}
