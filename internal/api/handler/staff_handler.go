package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// StaffService is the staff screen.
type StaffService interface {
	recordService[domain.StaffRecord]
	Create(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffRecord, error)
	Update(ctx context.Context, id string, in ports.UpdateStaffInput) (*domain.StaffRecord, error)
}

// StaffHandler handles HTTP requests for staff records.
type StaffHandler struct {
	service StaffService
	records recordRoutes[domain.StaffRecord]
}

func NewStaffHandler(service StaffService, heartbeat time.Duration, log zerolog.Logger) *StaffHandler {
	return &StaffHandler{service: service, records: newRecordRoutes[domain.StaffRecord](service, heartbeat, log)}
}

type createStaffRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

type updateStaffRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1"`
	Email *string `json:"email" validate:"omitempty,email"`
	Role  *string `json:"role" validate:"omitempty,min=1"`
}

// List handles GET /v1/staff.
//
// @Summary      List staff
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive search on name, email and role"
// @Success      200  {array}   domain.StaffRecord
// @Failure      401  {object}  errorBody
// @Router       /v1/staff [get]
func (h *StaffHandler) List(c echo.Context) error { return h.records.list(c) }

// Get handles GET /v1/staff/:id.
//
// @Summary      Get a staff record
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff record id"
// @Success      200  {object}  domain.StaffRecord
// @Failure      404  {object}  errorBody
// @Router       /v1/staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error { return h.records.get(c) }

// Stream handles GET /v1/staff/stream.
//
// @Summary      Live staff list
// @Tags         staff
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        q             query  string  false  "Search filter"
// @Param        access_token  query  string  false  "Bearer token for EventSource clients"
// @Success      200
// @Router       /v1/staff/stream [get]
func (h *StaffHandler) Stream(c echo.Context) error { return h.records.stream(c) }

// Create handles POST /v1/staff. With a password the record is linked to an
// account: an existing unlinked account is reused when the password
// matches, otherwise a new one is created.
//
// @Summary      Add a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStaffRequest  true  "Staff member"
// @Success      201   {object}  domain.StaffRecord
// @Failure      401   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	record, err := h.service.Create(c.Request().Context(), ports.CreateStaffInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, record)
}

// Update handles PATCH /v1/staff/:id.
//
// @Summary      Update a staff record
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Staff record id"
// @Param        body  body      updateStaffRequest  true  "Fields to change"
// @Success      200   {object}  domain.StaffRecord
// @Failure      404   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/staff/{id} [patch]
func (h *StaffHandler) Update(c echo.Context) error {
	var req updateStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	record, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateStaffInput{
		Name:  req.Name,
		Email: req.Email,
		Role:  req.Role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, record)
}

// Delete handles DELETE /v1/staff/:id.
//
// @Summary      Remove a staff member
// @Description  Removes the record only; the account stays and loses access.
// @Tags         staff
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Staff record id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/staff/{id} [delete]
func (h *StaffHandler) Delete(c echo.Context) error { return h.records.remove(c) }
