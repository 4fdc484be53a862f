package domain

import (
	"errors"
	"fmt"
	"time"
)

// RoomStatus is the housekeeping state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// ErrInvalidRoomStatus is returned for an unknown room status.
var ErrInvalidRoomStatus = errors.New("invalid room status")

// ParseRoomStatus validates a room status, defaulting empty input to
// available.
func ParseRoomStatus(s string) (RoomStatus, error) {
	switch st := RoomStatus(s); st {
	case "":
		return RoomAvailable, nil
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return st, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidRoomStatus, s)
}

// Room is a bookable unit.
type Room struct {
	ID        string     `json:"id" bson:"_id"`
	Number    string     `json:"number" bson:"number"`
	Type      string     `json:"type" bson:"type"`
	BasePrice float64    `json:"base_price" bson:"base_price"`
	Capacity  int        `json:"capacity" bson:"capacity"`
	Status    RoomStatus `json:"status" bson:"status"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
}

// Label is the human-readable room name used in prompts and exports.
func (r Room) Label() string {
	if r.Type == "" {
		return "Room " + r.Number
	}
	return fmt.Sprintf("Room %s (%s)", r.Number, r.Type)
}

func (r Room) SearchFields() []string {
	return []string{r.Number, r.Type, string(r.Status)}
}

func (r Room) SortDate() time.Time { return r.CreatedAt }
