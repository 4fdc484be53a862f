package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

const reservationsCollection = "reservations"

// ReservationService backs the reservations screen.
type ReservationService struct {
	*records[domain.Reservation]
	reservations ports.ReservationRepository
	rooms        ports.RoomRepository
	now          func() time.Time
}

func NewReservationService(
	reservations ports.ReservationRepository,
	rooms ports.RoomRepository,
	writes ports.WriteQueue,
	dedup DeleteDedup,
	log zerolog.Logger,
) *ReservationService {
	return &ReservationService{
		records: &records[domain.Reservation]{
			collection: reservationsCollection,
			repo:       reservations,
			writes:     writes,
			dedup:      dedup,
			log:        log,
		},
		reservations: reservations,
		rooms:        rooms,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Create books a room. An omitted total is priced at nights times the
// room's base price.
func (s *ReservationService) Create(ctx context.Context, in ports.CreateReservationInput) (*domain.Reservation, error) {
	status, err := domain.ParseReservationStatus(in.Status)
	if err != nil {
		return nil, err
	}
	if !in.CheckOut.After(in.CheckIn) {
		return nil, domain.ErrInvalidStayDates
	}
	room, err := s.room(ctx, in.RoomID)
	if err != nil {
		return nil, err
	}

	total := float64(domain.StayNights(in.CheckIn, in.CheckOut)) * room.BasePrice
	if in.TotalAmount != nil {
		total = *in.TotalAmount
	}

	res := &domain.Reservation{
		ID:          newID(),
		RoomID:      room.ID,
		GuestName:   strings.TrimSpace(in.GuestName),
		GuestEmail:  domain.NormalizeEmail(in.GuestEmail),
		GuestPhone:  strings.TrimSpace(in.GuestPhone),
		CheckIn:     in.CheckIn.UTC(),
		CheckOut:    in.CheckOut.UTC(),
		Guests:      in.Guests,
		TotalAmount: total,
		Status:      status,
		CreatedAt:   s.now(),
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}
	s.log.Info().Str("reservation_id", res.ID).Str("room_id", res.RoomID).Int("nights", res.Nights()).Msg("reservation created")
	return res, nil
}

// Update merges the edit. Changed dates are checked against the stored
// ones so a partial edit cannot invert the stay.
func (s *ReservationService) Update(ctx context.Context, id string, in ports.UpdateReservationInput) (*domain.Reservation, error) {
	fields := ports.Fields{}
	setIf(fields, "guest_name", in.GuestName)
	setIf(fields, "guest_phone", in.GuestPhone)
	setIf(fields, "guests", in.Guests)
	setIf(fields, "total_amount", in.TotalAmount)
	if in.GuestEmail != nil {
		fields["guest_email"] = domain.NormalizeEmail(*in.GuestEmail)
	}
	if in.Status != nil {
		status, err := domain.ParseReservationStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		fields["status"] = status
	}
	if in.RoomID != nil {
		if _, err := s.room(ctx, *in.RoomID); err != nil {
			return nil, err
		}
		fields["room_id"] = *in.RoomID
	}

	if in.CheckIn != nil || in.CheckOut != nil {
		current, err := s.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		checkIn, checkOut := current.CheckIn, current.CheckOut
		if in.CheckIn != nil {
			checkIn = in.CheckIn.UTC()
			fields["check_in"] = checkIn
		}
		if in.CheckOut != nil {
			checkOut = in.CheckOut.UTC()
			fields["check_out"] = checkOut
		}
		if !checkOut.After(checkIn) {
			return nil, domain.ErrInvalidStayDates
		}
	}
	return s.update(ctx, id, fields)
}

func (s *ReservationService) room(ctx context.Context, id string) (*domain.Room, error) {
	room, err := s.rooms.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", id, err)
	}
	return room, nil
}
