package mongo

import (
	"context"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/live"
)

const (
	collectionStaff        = "staff"
	collectionRooms        = "rooms"
	collectionReservations = "reservations"
	collectionStock        = "stock"
	collectionExpenses     = "expenses"
)

// StaffRepository implements ports.StaffRepository. Records are read in
// creation order so the first match of an email is stable.
type StaffRepository struct {
	collection[domain.StaffRecord]
}

func NewStaffRepository(db *mongo.Database, log zerolog.Logger) *StaffRepository {
	r := &StaffRepository{newCollection[domain.StaffRecord](db, collectionStaff, log)}
	r.sort = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	return r
}

func (r *StaffRepository) FindByEmail(ctx context.Context, email string) ([]domain.StaffRecord, error) {
	return r.find(ctx, bson.M{"email": email})
}

func (r *StaffRepository) FindByUserID(ctx context.Context, userID string) ([]domain.StaffRecord, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *StaffRepository) WatchByEmail(ctx context.Context, email string) (*live.Subscription[[]domain.StaffRecord], error) {
	return r.watchQuery(ctx, bson.M{"email": email})
}

type RoomRepository struct {
	collection[domain.Room]
}

func NewRoomRepository(db *mongo.Database, log zerolog.Logger) *RoomRepository {
	return &RoomRepository{newCollection[domain.Room](db, collectionRooms, log)}
}

type ReservationRepository struct {
	collection[domain.Reservation]
}

func NewReservationRepository(db *mongo.Database, log zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{newCollection[domain.Reservation](db, collectionReservations, log)}
}

func (r *ReservationRepository) FindByRoom(ctx context.Context, roomID string) ([]domain.Reservation, error) {
	return r.find(ctx, bson.M{"room_id": roomID})
}

type StockRepository struct {
	collection[domain.StockItem]
}

func NewStockRepository(db *mongo.Database, log zerolog.Logger) *StockRepository {
	return &StockRepository{newCollection[domain.StockItem](db, collectionStock, log)}
}

type ExpenseRepository struct {
	collection[domain.Expense]
}

func NewExpenseRepository(db *mongo.Database, log zerolog.Logger) *ExpenseRepository {
	return &ExpenseRepository{newCollection[domain.Expense](db, collectionExpenses, log)}
}
