package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment is the attendee's registration record for the event. It gates
// every hotel-related operation: no enrollment, no booking.
type Enrollment struct {
	gorm.Model
	UserID   uint      `gorm:"uniqueIndex" json:"user_id"`
	User     User      `json:"-"`
	Name     string    `json:"name"`
	CPF      string    `json:"cpf"`
	Birthday time.Time `json:"birthday"`
	Phone    string    `json:"phone"`
	Address  Address   `json:"address"`
}

type Address struct {
	gorm.Model
	EnrollmentID uint   `json:"enrollment_id"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	Number       string `json:"number"`
	ZipCode      string `json:"zip_code"`
}
