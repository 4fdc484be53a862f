package ports

import (
	"context"
	"time"

	"github.com/casaluna/hotel-pms/internal/core/domain"
)

// RoomRepository is the rooms collection.
type RoomRepository interface {
	Repository[domain.Room]
}

// ReservationRepository is the reservations collection.
type ReservationRepository interface {
	Repository[domain.Reservation]
	FindByRoom(ctx context.Context, roomID string) ([]domain.Reservation, error)
}

// HotelConfigRepository reads and writes the single configuration document.
type HotelConfigRepository interface {
	// Get returns domain.ErrNotFound when nothing has been saved yet.
	Get(ctx context.Context) (*domain.HotelConfig, error)
	Save(ctx context.Context, cfg *domain.HotelConfig) error
}

type CreateRoomInput struct {
	Number    string
	Type      string
	BasePrice float64
	Capacity  int
	Status    string
}

type UpdateRoomInput struct {
	Number    *string
	Type      *string
	BasePrice *float64
	Capacity  *int
	Status    *string
}

type CreateReservationInput struct {
	RoomID      string
	GuestName   string
	GuestEmail  string
	GuestPhone  string
	CheckIn     time.Time
	CheckOut    time.Time
	Guests      int
	TotalAmount *float64
	Status      string
}

type UpdateReservationInput struct {
	RoomID      *string
	GuestName   *string
	GuestEmail  *string
	GuestPhone  *string
	CheckIn     *time.Time
	CheckOut    *time.Time
	Guests      *int
	TotalAmount *float64
	Status      *string
}

type CreateStockInput struct {
	Name        string
	Category    string
	Quantity    int
	MinQuantity int
	Unit        string
	UnitPrice   float64
	Supplier    string
}

type UpdateStockInput struct {
	Name        *string
	Category    *string
	Quantity    *int
	MinQuantity *int
	Unit        *string
	UnitPrice   *float64
	Supplier    *string
}

type CreateExpenseInput struct {
	Description   string
	Category      string
	Amount        float64
	Date          time.Time
	PaymentMethod string
	Notes         string
}

type UpdateExpenseInput struct {
	Description   *string
	Category      *string
	Amount        *float64
	Date          *time.Time
	PaymentMethod *string
	Notes         *string
}

// StockRepository is the stock collection.
type StockRepository interface {
	Repository[domain.StockItem]
}

// ExpenseRepository is the expenses collection.
type ExpenseRepository interface {
	Repository[domain.Expense]
}
