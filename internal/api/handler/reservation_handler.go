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

// ReservationService is the reservations screen.
type ReservationService interface {
	recordService[domain.Reservation]
	Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error)
	Update(ctx context.Context, id string, in ports.UpdateReservationInput) (*domain.Reservation, error)
}

// ReservationHandler handles HTTP requests for reservations.
type ReservationHandler struct {
	service ReservationService
	records recordRoutes[domain.Reservation]
}

func NewReservationHandler(service ReservationService, heartbeat time.Duration, log zerolog.Logger) *ReservationHandler {
	return &ReservationHandler{service: service, records: newRecordRoutes[domain.Reservation](service, heartbeat, log)}
}

type createReservationRequest struct {
	RoomID      string    `json:"room_id" validate:"required"`
	GuestName   string    `json:"guest_name" validate:"required"`
	GuestEmail  string    `json:"guest_email" validate:"omitempty,email"`
	GuestPhone  string    `json:"guest_phone"`
	CheckIn     time.Time `json:"check_in" validate:"required"`
	CheckOut    time.Time `json:"check_out" validate:"required,gtfield=CheckIn"`
	Guests      int       `json:"guests" validate:"required,gte=1"`
	TotalAmount *float64  `json:"total_amount" validate:"omitempty,gte=0"`
	Status      string    `json:"status" validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}

type updateReservationRequest struct {
	RoomID      *string    `json:"room_id" validate:"omitempty,min=1"`
	GuestName   *string    `json:"guest_name" validate:"omitempty,min=1"`
	GuestEmail  *string    `json:"guest_email" validate:"omitempty,email"`
	GuestPhone  *string    `json:"guest_phone"`
	CheckIn     *time.Time `json:"check_in"`
	CheckOut    *time.Time `json:"check_out"`
	Guests      *int       `json:"guests" validate:"omitempty,gte=1"`
	TotalAmount *float64   `json:"total_amount" validate:"omitempty,gte=0"`
	Status      *string    `json:"status" validate:"omitempty,oneof=pending confirmed checked_in checked_out cancelled"`
}

// List handles GET /v1/reservations.
//
// @Summary      List reservations
// @Description  Ordered by check-in date, newest first.
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive search on guest name, email, phone and status"
// @Success      200  {array}   domain.Reservation
// @Failure      401  {object}  errorBody
// @Router       /v1/reservations [get]
func (h *ReservationHandler) List(c echo.Context) error { return h.records.list(c) }

// Get handles GET /v1/reservations/:id.
//
// @Summary      Get a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      200  {object}  domain.Reservation
// @Failure      404  {object}  errorBody
// @Router       /v1/reservations/{id} [get]
func (h *ReservationHandler) Get(c echo.Context) error { return h.records.get(c) }

// Stream handles GET /v1/reservations/stream.
//
// @Summary      Live reservation list
// @Tags         reservations
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        q             query  string  false  "Search filter"
// @Param        access_token  query  string  false  "Bearer token for EventSource clients"
// @Success      200
// @Router       /v1/reservations/stream [get]
func (h *ReservationHandler) Stream(c echo.Context) error { return h.records.stream(c) }

// Create handles POST /v1/reservations. When total_amount is omitted it is
// the number of nights times the room's base price.
//
// @Summary      Create a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReservationRequest  true  "Reservation"
// @Success      201   {object}  domain.Reservation
// @Failure      422   {object}  errorBody
// @Router       /v1/reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), ports.CreateReservationInput{
		RoomID:      req.RoomID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, booking)
}

// Update handles PATCH /v1/reservations/:id.
//
// @Summary      Update a reservation
// @Tags         reservations
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Reservation id"
// @Param        body  body      updateReservationRequest  true  "Fields to change"
// @Success      200   {object}  domain.Reservation
// @Failure      404   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/reservations/{id} [patch]
func (h *ReservationHandler) Update(c echo.Context) error {
	var req updateReservationRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	booking, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateReservationInput{
		RoomID:      req.RoomID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		CheckIn:     req.CheckIn,
		CheckOut:    req.CheckOut,
		Guests:      req.Guests,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /v1/reservations/:id.
//
// @Summary      Delete a reservation
// @Tags         reservations
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Reservation id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/reservations/{id} [delete]
func (h *ReservationHandler) Delete(c echo.Context) error { return h.records.remove(c) }
