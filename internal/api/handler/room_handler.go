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

// RoomService is the rooms screen.
type RoomService interface {
	recordService[domain.Room]
	Create(ctx context.Context, in ports.CreateRoomInput) (*domain.Room, error)
	Update(ctx context.Context, id string, in ports.UpdateRoomInput) (*domain.Room, error)
}

// RoomHandler handles HTTP requests for rooms.
type RoomHandler struct {
	service RoomService
	records recordRoutes[domain.Room]
}

func NewRoomHandler(service RoomService, heartbeat time.Duration, log zerolog.Logger) *RoomHandler {
	return &RoomHandler{service: service, records: newRecordRoutes[domain.Room](service, heartbeat, log)}
}

type createRoomRequest struct {
	Number    string  `json:"number" validate:"required"`
	Type      string  `json:"type" validate:"required"`
	BasePrice float64 `json:"base_price" validate:"gte=0"`
	Capacity  int     `json:"capacity" validate:"required,gte=1"`
	Status    string  `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

type updateRoomRequest struct {
	Number    *string  `json:"number" validate:"omitempty,min=1"`
	Type      *string  `json:"type" validate:"omitempty,min=1"`
	BasePrice *float64 `json:"base_price" validate:"omitempty,gte=0"`
	Capacity  *int     `json:"capacity" validate:"omitempty,gte=1"`
	Status    *string  `json:"status" validate:"omitempty,oneof=available occupied maintenance"`
}

// List handles GET /v1/rooms.
//
// @Summary      List rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  false  "Case-insensitive search on number, type and status"
// @Success      200  {array}   domain.Room
// @Failure      401  {object}  errorBody
// @Router       /v1/rooms [get]
func (h *RoomHandler) List(c echo.Context) error { return h.records.list(c) }

// Get handles GET /v1/rooms/:id.
//
// @Summary      Get a room
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  domain.Room
// @Failure      404  {object}  errorBody
// @Router       /v1/rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error { return h.records.get(c) }

// Stream handles GET /v1/rooms/stream.
//
// @Summary      Live room list
// @Description  Server-sent events; a "snapshot" event carries the filtered list after every change.
// @Tags         rooms
// @Produce      text/event-stream
// @Security     BearerAuth
// @Param        q             query  string  false  "Search filter"
// @Param        access_token  query  string  false  "Bearer token for EventSource clients"
// @Success      200
// @Router       /v1/rooms/stream [get]
func (h *RoomHandler) Stream(c echo.Context) error { return h.records.stream(c) }

// Create handles POST /v1/rooms.
//
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoomRequest  true  "Room"
// @Success      201   {object}  domain.Room
// @Failure      422   {object}  errorBody
// @Router       /v1/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.service.Create(c.Request().Context(), ports.CreateRoomInput{
		Number:    req.Number,
		Type:      req.Type,
		BasePrice: req.BasePrice,
		Capacity:  req.Capacity,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, room)
}

// Update handles PATCH /v1/rooms/:id.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Room id"
// @Param        body  body      updateRoomRequest  true  "Fields to change"
// @Success      200   {object}  domain.Room
// @Failure      404   {object}  errorBody
// @Failure      422   {object}  errorBody
// @Router       /v1/rooms/{id} [patch]
func (h *RoomHandler) Update(c echo.Context) error {
	var req updateRoomRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	room, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateRoomInput{
		Number:    req.Number,
		Type:      req.Type,
		BasePrice: req.BasePrice,
		Capacity:  req.Capacity,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /v1/rooms/:id.
//
// @Summary      Delete a room
// @Description  The delete is queued; the response does not report its outcome.
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Room id"
// @Success      202  {object}  acceptedResponse
// @Router       /v1/rooms/{id} [delete]
func (h *RoomHandler) Delete(c echo.Context) error { return h.records.remove(c) }
