package repository

import (
	"context"
	"errors"

	"github.com/gabrielleitesep/Drivent4/internal/models"
	"gorm.io/gorm"
)

type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// FindByEnrollmentID returns the ticket bought under the enrollment with its
// type loaded, or nil when no ticket exists.
func (r *TicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID uint) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.db.WithContext(ctx).Preload("TicketType").Where(&models.Ticket{EnrollmentID: enrollmentID}).First(&ticket).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}
