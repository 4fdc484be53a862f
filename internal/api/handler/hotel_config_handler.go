package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// HotelConfigService reads and saves the property settings.
type HotelConfigService interface {
	Get(ctx context.Context) (*domain.HotelConfig, error)
	Save(ctx context.Context, cfg domain.HotelConfig) (*domain.HotelConfig, error)
}

type HotelConfigHandler struct {
	service HotelConfigService
}

func NewHotelConfigHandler(service HotelConfigService) *HotelConfigHandler {
	return &HotelConfigHandler{service: service}
}

type hotelConfigRequest struct {
	HotelName    string  `json:"hotel_name" validate:"required,max=200"`
	Address      string  `json:"address"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email" validate:"omitempty,email"`
	Currency     string  `json:"currency" validate:"required,len=3"`
	CheckInTime  string  `json:"check_in_time" validate:"required,datetime=15:04"`
	CheckOutTime string  `json:"check_out_time" validate:"required,datetime=15:04"`
	TaxRate      float64 `json:"tax_rate" validate:"gte=0,lte=100"`
}

// Get handles GET /v1/hotel-configuration. Defaults are returned until the
// configuration is first saved.
//
// @Summary      Get hotel configuration
// @Tags         hotel-configuration
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.HotelConfig
// @Failure      401  {object}  errorBody
// @Router       /v1/hotel-configuration [get]
func (h *HotelConfigHandler) Get(c echo.Context) error {
	cfg, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}

// Save handles PUT /v1/hotel-configuration. The write is awaited.
//
// @Summary      Save hotel configuration
// @Tags         hotel-configuration
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      hotelConfigRequest  true  "Settings"
// @Success      200   {object}  domain.HotelConfig
// @Failure      422   {object}  errorBody
// @Router       /v1/hotel-configuration [put]
func (h *HotelConfigHandler) Save(c echo.Context) error {
	var req hotelConfigRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	cfg, err := h.service.Save(c.Request().Context(), domain.HotelConfig{
		HotelName:    req.HotelName,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		Currency:     req.Currency,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		TaxRate:      req.TaxRate,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cfg)
}
