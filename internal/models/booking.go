package models

import (
	"gorm.io/gorm"
)

// Booking assigns a user to a hotel room. A user holds at most one active
// booking; lookups use first-match semantics rather than a DB constraint.
type Booking struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`
	RoomID uint `json:"roomId"`
	Room   Room `json:"-"`
}
