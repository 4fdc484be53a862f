package domain

import (
	"testing"
	"time"
)

func TestStayNights(t *testing.T) {
	in := time.Date(2026, 3, 1, 15, 0, 0, 0, time.UTC)

	if n := StayNights(in, in.AddDate(0, 0, 3)); n != 3 {
		t.Fatalf("expected 3 nights, got %d", n)
	}
	if n := StayNights(in, in.Add(20*time.Hour)); n != 1 {
		t.Fatalf("partial day should count as a night, got %d", n)
	}
	if n := StayNights(in, in.Add(-time.Hour)); n != 0 {
		t.Fatalf("inverted stay should be 0 nights, got %d", n)
	}
}

func TestReservationStatus_CountsAsRevenue(t *testing.T) {
	counted := []ReservationStatus{ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut}
	for _, s := range counted {
		if !s.CountsAsRevenue() {
			t.Fatalf("%s should count as revenue", s)
		}
	}
	for _, s := range []ReservationStatus{ReservationPending, ReservationCancelled} {
		if s.CountsAsRevenue() {
			t.Fatalf("%s should not count as revenue", s)
		}
	}
}

func TestRoom_Label(t *testing.T) {
	if got := (Room{Number: "101", Type: "Deluxe"}).Label(); got != "Room 101 (Deluxe)" {
		t.Fatalf("unexpected label %q", got)
	}
	if got := (Room{Number: "7"}).Label(); got != "Room 7" {
		t.Fatalf("unexpected label %q", got)
	}
}

func TestStockItem_LowStock(t *testing.T) {
	if !(StockItem{Quantity: 2, MinQuantity: 5}).LowStock() {
		t.Fatalf("expected low stock")
	}
	if (StockItem{Quantity: 2}).LowStock() {
		t.Fatalf("no reorder level means never low")
	}
}
