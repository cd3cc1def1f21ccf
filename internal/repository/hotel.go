package repository

import (
	"context"
	"errors"

	"github.com/gabrielleitesep/Drivent4/internal/models"
	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := r.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// FindWithRooms returns the hotel with its rooms and their bookings loaded,
// or nil when the hotel does not exist.
func (r *HotelRepository) FindWithRooms(ctx context.Context, hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := r.db.WithContext(ctx).Preload("Rooms.Bookings").First(&hotel, hotelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}
