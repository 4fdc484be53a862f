package service

import (
	"context"
	"fmt"
	"time"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

// DashboardService aggregates the landing screen figures.
type DashboardService struct {
	rooms        ports.RoomRepository
	reservations ports.ReservationRepository
	expenses     ports.ExpenseRepository
	stock        ports.StockRepository
	now          func() time.Time
}

func NewDashboardService(
	rooms ports.RoomRepository,
	reservations ports.ReservationRepository,
	expenses ports.ExpenseRepository,
	stock ports.StockRepository,
) *DashboardService {
	return &DashboardService{
		rooms:        rooms,
		reservations: reservations,
		expenses:     expenses,
		stock:        stock,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *DashboardService) Summary(ctx context.Context) (*ports.DashboardSummary, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: rooms: %w", err)
	}
	bookings, err := s.reservations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: reservations: %w", err)
	}
	expenses, err := s.expenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: expenses: %w", err)
	}
	items, err := s.stock.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard: stock: %w", err)
	}
	return Summarize(rooms, bookings, expenses, items, s.now()), nil
}

// Summarize computes the dashboard figures for the day containing now.
func Summarize(rooms []domain.Room, bookings []domain.Reservation, expenses []domain.Expense, items []domain.StockItem, now time.Time) *ports.DashboardSummary {
	sum := &ports.DashboardSummary{TotalRooms: len(rooms)}
	for _, r := range rooms {
		switch r.Status {
		case domain.RoomAvailable:
			sum.AvailableRooms++
		case domain.RoomOccupied:
			sum.OccupiedRooms++
		case domain.RoomMaintenance:
			sum.MaintenanceRooms++
		}
	}
	if sum.TotalRooms > 0 {
		sum.OccupancyRate = float64(sum.OccupiedRooms) / float64(sum.TotalRooms)
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	nextMonth := monthStart.AddDate(0, 1, 0)

	within := func(t, from, to time.Time) bool { return !t.Before(from) && t.Before(to) }

	for _, b := range bookings {
		if b.Status == domain.ReservationCancelled {
			continue
		}
		if within(b.CheckIn, today, tomorrow) {
			sum.ArrivalsToday++
		}
		if within(b.CheckOut, today, tomorrow) {
			sum.DeparturesToday++
		}
		if !b.CheckIn.Before(today) {
			sum.UpcomingBookings++
		}
		if b.Status.CountsAsRevenue() && within(b.CheckIn, monthStart, nextMonth) {
			sum.MonthRevenue += b.TotalAmount
		}
	}
	for _, e := range expenses {
		if within(e.Date, monthStart, nextMonth) {
			sum.MonthExpenses += e.Amount
		}
	}
	for _, it := range items {
		if it.LowStock() {
			sum.LowStockItems++
		}
	}
	return sum
}
