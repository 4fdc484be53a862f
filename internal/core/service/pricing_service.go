package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// PricingService builds the advisor prompt for a room and relays the
// suggestion.
type PricingService struct {
	rooms        ports.RoomRepository
	reservations ports.ReservationRepository
	advisor      ports.PriceAdvisor
	log          zerolog.Logger
	now          func() time.Time
}

func NewPricingService(
	rooms ports.RoomRepository,
	reservations ports.ReservationRepository,
	advisor ports.PriceAdvisor,
	log zerolog.Logger,
) *PricingService {
	return &PricingService{
		rooms:        rooms,
		reservations: reservations,
		advisor:      advisor,
		log:          log,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Suggest asks the advisor for a nightly price. Advisor failures are
// reported as domain.ErrAdvisorUnavailable.
func (s *PricingService) Suggest(ctx context.Context, roomID string) (*ports.PriceAdvice, error) {
	room, err := s.rooms.Get(ctx, roomID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("suggest price: %w", err)
	}

	history, err := s.reservations.FindByRoom(ctx, room.ID)
	if err != nil {
		return nil, fmt.Errorf("suggest price: room history: %w", err)
	}
	all, err := s.reservations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest price: bookings: %w", err)
	}

	req := ports.PriceAdviceRequest{
		RoomLabel:            room.Label(),
		HistoricalData:       HistoricalSummary(*room, history),
		CurrentBookingTrends: TrendsSummary(all, s.now()),
	}
	advice, err := s.advisor.SuggestPrice(ctx, req)
	if err != nil {
		s.log.Error().Err(err).Str("room_id", room.ID).Msg("pricing advisor failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrAdvisorUnavailable, err)
	}
	s.log.Info().Str("room_id", room.ID).Float64("suggested_price", advice.SuggestedPrice).Msg("price suggested")
	return advice, nil
}

// HistoricalSummary describes the revenue a room made from its confirmed,
// checked-in and checked-out bookings.
func HistoricalSummary(room domain.Room, bookings []domain.Reservation) string {
	var (
		count   int
		nights  int
		revenue float64
	)
	for _, b := range bookings {
		if b.RoomID != room.ID || !b.Status.CountsAsRevenue() {
			continue
		}
		count++
		nights += b.Nights()
		revenue += b.TotalAmount
	}

	if count == 0 {
		return fmt.Sprintf("No historical booking data is available for %s. Current base price: %.2f.", room.Label(), room.BasePrice)
	}
	avg := 0.0
	if nights > 0 {
		avg = revenue / float64(nights)
	}
	return fmt.Sprintf("%s: %d past bookings, %d nights sold, total revenue %.2f, average nightly rate %.2f. Current base price: %.2f.",
		room.Label(), count, nights, revenue, avg, room.BasePrice)
}

// TrendsSummary counts upcoming bookings across the hotel: check-in today or
// later, not cancelled.
func TrendsSummary(bookings []domain.Reservation, now time.Time) string {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	upcoming := 0
	for _, b := range bookings {
		if b.Status != domain.ReservationCancelled && !b.CheckIn.Before(today) {
			upcoming++
		}
	}
	return fmt.Sprintf("%d upcoming non-cancelled bookings across the hotel.", upcoming)
}
