package repository

import (
	"context"
	"errors"

	"github.com/gabrielleitesep/Drivent4/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrRoomFull is returned by Create and Update when the transactional
	// capacity guard finds the target room already at capacity.
	ErrRoomFull = errors.New("room is at full capacity")

	// ErrBookingNotFound is returned by Update when the booking row to
	// change does not exist.
	ErrBookingNotFound = errors.New("booking not found")
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// FindByUserID returns the user's booking, or nil when the user has none.
func (r *BookingRepository) FindByUserID(ctx context.Context, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Where(&models.Booking{UserID: userID}).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindRoom returns the room with its bookings loaded, or nil when the room
// does not exist.
func (r *BookingRepository) FindRoom(ctx context.Context, roomID uint) (*models.Room, error) {
	var room models.Room
	err := r.db.WithContext(ctx).Preload("Bookings").First(&room, roomID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// Create inserts a booking for the user in the given room. The occupancy
// check and the insert run in one transaction so two concurrent requests
// cannot both squeeze into the last free spot.
func (r *BookingRepository) Create(ctx context.Context, roomID, userID uint) (*models.Booking, error) {
	booking := models.Booking{RoomID: roomID, UserID: userID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkRoomCapacity(tx, roomID, 0); err != nil {
			return err
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Update moves the booking identified by bookingID to the given room, under
// the same transactional capacity guard as Create. The booking being moved
// does not count against the target room's occupancy.
func (r *BookingRepository) Update(ctx context.Context, bookingID, roomID, userID uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}
		if err := checkRoomCapacity(tx, roomID, bookingID); err != nil {
			return err
		}
		booking.RoomID = roomID
		booking.UserID = userID
		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func checkRoomCapacity(tx *gorm.DB, roomID, excludeBookingID uint) error {
	var room models.Room
	if err := tx.First(&room, roomID).Error; err != nil {
		return err
	}
	query := tx.Model(&models.Booking{}).Where("room_id = ?", roomID)
	if excludeBookingID != 0 {
		query = query.Where("id <> ?", excludeBookingID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count >= int64(room.Capacity) {
		return ErrRoomFull
	}
	return nil
}
