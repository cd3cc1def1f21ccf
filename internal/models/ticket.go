package models

import (
	"gorm.io/gorm"
)

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type TicketType struct {
	gorm.Model
	Name          string `json:"name"`
	Price         int    `json:"price"`
	IsRemote      bool   `json:"isRemote"`
	IncludesHotel bool   `json:"includesHotel"`
}

type Ticket struct {
	gorm.Model
	EnrollmentID uint         `json:"enrollment_id"`
	TicketTypeID uint         `json:"ticket_type_id"`
	TicketType   TicketType   `json:"TicketType"`
	Status       TicketStatus `json:"status"`
}
