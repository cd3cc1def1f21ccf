package repository

import (
	"context"
	"errors"

	"github.com/gabrielleitesep/Drivent4/internal/models"
	"gorm.io/gorm"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// FindWithAddressByUserID returns the user's enrollment with its address
// loaded, or nil when the user never enrolled.
func (r *EnrollmentRepository) FindWithAddressByUserID(ctx context.Context, userID uint) (*models.Enrollment, error) {
	var enrollment models.Enrollment
	err := r.db.WithContext(ctx).Preload("Address").Where(&models.Enrollment{UserID: userID}).First(&enrollment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}
