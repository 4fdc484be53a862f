package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
	"github.com/casaluna/hotel-pms/internal/infrastructure/export"
)

// ExpenseService is the expenses screen.
type ExpenseService interface {
	recordService[domain.Expense]
	Create(ctx context.Context, in ports.CreateExpenseInput) (*domain.Expense, error)
	Update(ctx context.Context, id string, in ports.UpdateExpenseInput) (*domain.Expense, error)
}

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	service ExpenseService
	records recordRoutes[domain.Expense]
	now     func() time.Time
}

func NewExpenseHandler(service ExpenseService, heartbeat time.Duration, log zerolog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		service: service,
		records: newRecordRoutes[domain.Expense](service, heartbeat, log),
		now:     time.Now,
	}
}

type createExpenseRequest struct {
	Description   string    `json:"description" validate:"required"`
	Category      string    `json:"category" validate:"required"`
	Amount        float64   `json:"amount" validate:"gt=0"`
	Date          time.Time `json:"date" validate:"required"`
	PaymentMethod string    `json:"payment_method"`
	Notes         string    `json:"notes" validate:"max=2000"`
}

type updateExpenseRequest struct {
	Description   *string    `json:"description" validate:"omitempty,min=1"`
	Category      *string    `json:"category" validate:"omitempty,min=1"`
	Amount        *float64   `json:"amount" validate:"omitempty,gt=0"`
	Date          *time.Time `json:"date"`
	PaymentMethod *string    `json:"payment_method"`
	Notes         *string    `json:"notes" validate:"omitempty,max=2000"`
}

// List handles GET /v1/expenses.
//
// @Summary      List expenses
// @Description  Ordered by date, newest first.
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive search on description, category, payment method and notes"
// @Success      200  {array}   domain.Expense
// @Failure      401  {object}  errorBody
// @Router       /v1/expenses [get]
func (h *ExpenseHandler) List(c echo.Context) error { return h.records.list(c) }

// Get handles GET /v1/expenses/:id.
//
// @Summary      Get an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Expense id"
// @Success      200  {object}  domain.Expense
// @Failure      404  {object}  errorBody
// @Router       /v1/expenses/{id} [get]
func (h *ExpenseHandler) Get(c echo.Context) error { return h.records.get(c) }

// Stream handles GET /v1/expenses/stream.
//
// @Summary      Live expense list
// @Tags         expenses
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        q             query  string  false  "Search filter"
// @Param        access_token  query  string  false  "Bearer token for EventSource clients"
// @Success      200
// @Router       /v1/expenses/stream [get]
func (h *ExpenseHandler) Stream(c echo.Context) error { return h.records.stream(c) }

// Export handles GET /v1/expenses/export.
//
// @Summary      Export expenses as XLSX
// @Tags         expenses
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        q    query  string  false  "Search filter"
// @Success      200  {file}  binary
// @Router       /v1/expenses/export [get]
func (h *ExpenseHandler) Export(c echo.Context) error {
	items, err := h.service.List(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	data, err := export.Expenses(items)
	if err != nil {
		return err
	}
	return attachment(c, "expenses", h.now(), data)
}

// Create handles POST /v1/expenses.
//
// @Summary      Record an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createExpenseRequest  true  "Expense"
// @Success      201   {object}  domain.Expense
// @Failure      422   {object}  errorBody
// @Router       /v1/expenses [post]
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	expense, err := h.service.Create(c.Request().Context(), ports.CreateExpenseInput{
		Description:   req.Description,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, expense)
}

// Update handles PATCH /v1/expenses/:id.
//
// @Summary      Update an expense
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Expense id"
// @Param        body  body      updateExpenseRequest  true  "Fields to change"
// @Success      200   {object}  domain.Expense
// @Failure      404   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/expenses/{id} [patch]
func (h *ExpenseHandler) Update(c echo.Context) error {
	var req updateExpenseRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	expense, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateExpenseInput{
		Description:   req.Description,
		Category:      req.Category,
		Amount:        req.Amount,
		Date:          req.Date,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, expense)
}

// Delete handles DELETE /v1/expenses/:id.
//
// @Summary      Delete an expense
// @Tags         expenses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Expense id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/expenses/{id} [delete]
func (h *ExpenseHandler) Delete(c echo.Context) error { return h.records.remove(c) }

// attachment sends an XLSX workbook as a dated download.
func attachment(c echo.Context, name string, now time.Time, data []byte) error {
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("%s-%s.xlsx", name, now.Format("2006-01-02"))))
	return c.Blob(http.StatusOK, export.ContentType, data)
}
