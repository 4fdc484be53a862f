package domain

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ReservationStatus is the lifecycle state of a booking.
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationConfirmed  ReservationStatus = "confirmed"
	ReservationCheckedIn  ReservationStatus = "checked_in"
	ReservationCheckedOut ReservationStatus = "checked_out"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// ErrInvalidReservationStatus is returned for an unknown booking status.
var ErrInvalidReservationStatus = errors.New("invalid reservation status")

// ParseReservationStatus validates a booking status, defaulting empty input
// to pending.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch st := ReservationStatus(s); st {
	case "":
		return ReservationPending, nil
	case ReservationPending, ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut, ReservationCancelled:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidReservationStatus, s)
}

// CountsAsRevenue reports whether bookings in this status contribute to
// historical revenue.
func (s ReservationStatus) CountsAsRevenue() bool {
	switch s {
	case ReservationConfirmed, ReservationCheckedIn, ReservationCheckedOut:
		return true
	}
	return false
}

// Reservation is a guest booking of one room.
type Reservation struct {
	ID          string            `json:"id" bson:"_id"`
	RoomID      string            `json:"room_id" bson:"room_id"`
	GuestName   string            `json:"guest_name" bson:"guest_name"`
	GuestEmail  string            `json:"guest_email,omitempty" bson:"guest_email,omitempty"`
	GuestPhone  string            `json:"guest_phone,omitempty" bson:"guest_phone,omitempty"`
	CheckIn     time.Time         `json:"check_in" bson:"check_in"`
	CheckOut    time.Time         `json:"check_out" bson:"check_out"`
	Guests      int               `json:"guests" bson:"guests"`
	TotalAmount float64           `json:"total_amount" bson:"total_amount"`
	Status      ReservationStatus `json:"status" bson:"status"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}

// Nights is the number of nights between check-in and check-out, rounded
// up, never negative.
func (r Reservation) Nights() int {
	return StayNights(r.CheckIn, r.CheckOut)
}

// StayNights counts nights between two instants.
func StayNights(checkIn, checkOut time.Time) int {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Hours() / 24))
}

func (r Reservation) SearchFields() []string {
	return []string{r.GuestName, r.GuestEmail, r.GuestPhone, string(r.Status)}
}

func (r Reservation) SortDate() time.Time { return r.CheckIn }
