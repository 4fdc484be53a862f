package domain

import "time"

// HotelConfigID is the id of the single configuration document.
const HotelConfigID = "main"

// HotelConfig holds property-wide settings.
type HotelConfig struct {
	HotelName    string    `json:"hotel_name" bson:"hotel_name"`
	Address      string    `json:"address" bson:"address"`
	Phone        string    `json:"phone" bson:"phone"`
	Email        string    `json:"email" bson:"email"`
	Currency     string    `json:"currency" bson:"currency"`
	CheckInTime  string    `json:"check_in_time" bson:"check_in_time"`
	CheckOutTime string    `json:"check_out_time" bson:"check_out_time"`
	TaxRate      float64   `json:"tax_rate" bson:"tax_rate"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
