package models

import (
	"gorm.io/gorm"
)

type Hotel struct {
	gorm.Model
	Name  string `json:"name"`
	Image string `json:"image"` // URL to image
	Rooms []Room `json:"rooms"`
}

// Room holds a fixed number of simultaneous bookings; Bookings is loaded
// only to measure current occupancy.
type Room struct {
	gorm.Model
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	HotelID  uint      `json:"hotel_id"`
	Bookings []Booking `json:"bookings"`
}
