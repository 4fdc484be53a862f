package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
	"github.com/casaluna/hotel-pms/internal/infrastructure/export"
)

// StockService is the inventory screen.
type StockService interface {
	recordService[domain.StockItem]
	Create(ctx context.Context, in ports.CreateStockInput) (*domain.StockItem, error)
	Update(ctx context.Context, id string, in ports.UpdateStockInput) (*domain.StockItem, error)
}

// StockHandler handles HTTP requests for stock items.
type StockHandler struct {
	service StockService
	records recordRoutes[domain.StockItem]
	now     func() time.Time
}

func NewStockHandler(service StockService, heartbeat time.Duration, log zerolog.Logger) *StockHandler {
	return &StockHandler{
		service: service,
		records: newRecordRoutes[domain.StockItem](service, heartbeat, log),
		now:     time.Now,
	}
}

type createStockRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price" validate:"gte=0"`
	Supplier    string  `json:"supplier"`
}

type updateStockRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Category    *string  `json:"category" validate:"omitempty,min=1"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
	MinQuantity *int     `json:"min_quantity" validate:"omitempty,gte=0"`
	Unit        *string  `json:"unit"`
	UnitPrice   *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	Supplier    *string  `json:"supplier"`
}

// List handles GET /v1/stock.
//
// @Summary      List stock items
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive search on name, category and supplier"
// @Success      200  {array}   domain.StockItem
// @Failure      401  {object}  errorBody
// @Router       /v1/stock [get]
func (h *StockHandler) List(c echo.Context) error { return h.records.list(c) }

// Get handles GET /v1/stock/:id.
//
// @Summary      Get a stock item
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Stock item id"
// @Success      200  {object}  domain.StockItem
// @Failure      404  {object}  errorBody
// @Router       /v1/stock/{id} [get]
func (h *StockHandler) Get(c echo.Context) error { return h.records.get(c) }

// Stream handles GET /v1/stock/stream.
//
// @Summary      Live stock list
// @Tags         stock
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        q             query  string  false  "Search filter"
// @Param        access_token  query  string  false  "Bearer token for EventSource clients"
// @Success      200
// @Router       /v1/stock/stream [get]
func (h *StockHandler) Stream(c echo.Context) error { return h.records.stream(c) }

// Export handles GET /v1/stock/export.
//
// @Summary      Export stock as XLSX
// @Tags         stock
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        q    query  string  false  "Search filter"
// @Success      200  {file}  binary
// @Router       /v1/stock/export [get]
func (h *StockHandler) Export(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	data, err := export.Stock(items)
	if err != nil {
		return err
	}
	return attachment(c, "stock", h.now(), data)
}

// Create handles POST /v1/stock.
//
// @Summary      Create a stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStockRequest  true  "Stock item"
// @Success      201   {object}  domain.StockItem
// @Failure      422   {object}  errorBody
// @Router       /v1/stock [post]
func (h *StockHandler) Create(c echo.Context) error {
	var req createStockRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.service.Create(c.Request().Context(), ports.CreateStockInput{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		Supplier:    req.Supplier,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// Update handles PATCH /v1/stock/:id.
//
// @Summary      Update a stock item
// @Tags         stock
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Stock item id"
// @Param        body  body      updateStockRequest  true  "Fields to change"
// @Success      200   {object}  domain.StockItem
// @Failure      404   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/stock/{id} [patch]
func (h *StockHandler) Update(c echo.Context) error {
	var req updateStockRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateStockInput{
		Name:        req.Name,
		Category:    req.Category,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		Unit:        req.Unit,
		UnitPrice:   req.UnitPrice,
		Supplier:    req.Supplier,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /v1/stock/:id.
//
// @Summary      Delete a stock item
// @Tags         stock
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Stock item id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/stock/{id} [delete]
func (h *StockHandler) Delete(c echo.Context) error { return h.records.remove(c) }
