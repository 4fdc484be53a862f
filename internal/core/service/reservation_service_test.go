package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/casaluna/hotel-pms/internal/core/domain"
	"github.com/casaluna/hotel-pms/internal/core/ports"
)

func day(d int) time.Time {
	return time.Date(2024, 6, d, 14, 0, 0, 0, time.UTC)
}

func newReservationFixture() (*ReservationService, *stubReservationRepo) {
	rooms := newStubRoomRepo(domain.Room{ID: "r1", Number: "101", Type: "Deluxe", BasePrice: 120})
	res := newStubReservationRepo()
	return NewReservationService(res, rooms, &syncQueue{}, newStubDedup(), zerolog.Nop()), res
}

func TestReservationService_Create_PricesFromRoom(t *testing.T) {
	svc, _ := newReservationFixture()

	got, err := svc.Create(context.Background(), ports.CreateReservationInput{
		RoomID: "r1", GuestName: "Ann", CheckIn: day(1), CheckOut: day(4), Guests: 2,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.TotalAmount != 360 {
		t.Fatalf("expected 3 nights x 120 = 360, got %v", got.TotalAmount)
	}
	if got.Status != domain.ReservationPending {
		t.Fatalf("expected pending default, got %s", got.Status)
	}
}

func TestReservationService_Create_ExplicitTotalWins(t *testing.T) {
	svc, _ := newReservationFixture()
	total := 99.5

	got, err := svc.Create(context.Background(), ports.CreateReservationInput{
		RoomID: "r1", GuestName: "Ann", CheckIn: day(1), CheckOut: day(2), TotalAmount: &total, Status: "confirmed",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if got.TotalAmount != 99.5 || got.Status != domain.ReservationConfirmed {
		t.Fatalf("unexpected reservation: %+v", got)
	}
}

func TestReservationService_Create_Rejections(t *testing.T) {
	svc, repo := newReservationFixture()
	ctx := context.Background()

	if _, err := svc.Create(ctx, ports.CreateReservationInput{RoomID: "r1", CheckIn: day(4), CheckOut: day(4)}); !errors.Is(err, domain.ErrInvalidStayDates) {
		t.Fatalf("expected ErrInvalidStayDates, got %v", err)
	}
	if _, err := svc.Create(ctx, ports.CreateReservationInput{RoomID: "nope", CheckIn: day(1), CheckOut: day(2)}); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if _, err := svc.Create(ctx, ports.CreateReservationInput{RoomID: "r1", CheckIn: day(1), CheckOut: day(2), Status: "lost"}); !errors.Is(err, domain.ErrInvalidReservationStatus) {
		t.Fatalf("expected ErrInvalidReservationStatus, got %v", err)
	}
	if len(repo.docs) != 0 {
		t.Fatalf("nothing must be written, got %d", len(repo.docs))
	}
}

func TestReservationService_Update_PartialDatesChecked(t *testing.T) {
	svc, repo := newReservationFixture()
	repo.docs = []domain.Reservation{{ID: "b1", RoomID: "r1", CheckIn: day(10), CheckOut: day(12)}}
	ctx := context.Background()

	early := day(9)
	if _, err := svc.Update(ctx, "b1", ports.UpdateReservationInput{CheckOut: &early}); !errors.Is(err, domain.ErrInvalidStayDates) {
		t.Fatalf("expected ErrInvalidStayDates, got %v", err)
	}
	if len(repo.updates) != 0 {
		t.Fatalf("no update must be written")
	}

	later := day(14)
	got, err := svc.Update(ctx, "b1", ports.UpdateReservationInput{CheckOut: &later})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if !got.CheckOut.Equal(later) || !got.CheckIn.Equal(day(10)) {
		t.Fatalf("unexpected dates: %v - %v", got.CheckIn, got.CheckOut)
	}
}

func TestReservationService_List_SortsByCheckIn(t *testing.T) {
	svc, repo := newReservationFixture()
	repo.docs = []domain.Reservation{
		{ID: "old", GuestName: "Ann", CheckIn: day(1)},
		{ID: "new", GuestName: "Bob", CheckIn: day(20)},
	}

	got, err := svc.List(context.Background(), "")
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if got[0].ID != "new" || got[1].ID != "old" {
		t.Fatalf("expected newest check-in first, got %s, %s", got[0].ID, got[1].ID)
	}
}
