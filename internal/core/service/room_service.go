package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const roomsCollection = "rooms"

// RoomService backs the rooms screen.
type RoomService struct {
	*records[domain.Room]
	rooms ports.RoomRepository
	now   func() time.Time
}

func NewRoomService(rooms ports.RoomRepository, writes ports.WriteQueue, dedup DeleteDedup, log zerolog.Logger) *RoomService {
	return &RoomService{
		records: &records[domain.Room]{
			collection: roomsCollection,
			repo:       rooms,
			writes:     writes,
			dedup:      dedup,
			log:        log,
		},
		rooms: rooms,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *RoomService) Create(ctx context.Context, in ports.CreateRoomInput) (*domain.Room, error) {
	status, err := domain.ParseRoomStatus(in.Status)
	if err != nil {
		return nil, err
	}
	room := &domain.Room{
		ID:        newID(),
		Number:    strings.TrimSpace(in.Number),
		Type:      strings.TrimSpace(in.Type),
		BasePrice: in.BasePrice,
		Capacity:  in.Capacity,
		Status:    status,
		CreatedAt: s.now(),
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}
	s.log.Info().Str("room_id", room.ID).Str("number", room.Number).Msg("room created")
	return room, nil
}

func (s *RoomService) Update(ctx context.Context, id string, in ports.UpdateRoomInput) (*domain.Room, error) {
	fields := ports.Fields{}
	setIf(fields, "number", in.Number)
	setIf(fields, "type", in.Type)
	setIf(fields, "base_price", in.BasePrice)
	setIf(fields, "capacity", in.Capacity)
	if in.Status != nil {
		status, err := domain.ParseRoomStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	return s.update(ctx, id, fields)
}
