package service

import (
	"context"

	"github.com/gabrielleitesep/Drivent4/internal/apperrors"
	"github.com/gabrielleitesep/Drivent4/internal/models"
	"github.com/gabrielleitesep/Drivent4/internal/repository"
	"go.uber.org/zap"
)

// HotelService lists hotels and their rooms for eligible attendees, behind
// the same enrollment/ticket gate as booking itself.
type HotelService struct {
	hotels      *repository.HotelRepository
	enrollments *repository.EnrollmentRepository
	tickets     *repository.TicketRepository
	log         *zap.Logger
}

func NewHotelService(
	hotels *repository.HotelRepository,
	enrollments *repository.EnrollmentRepository,
	tickets *repository.TicketRepository,
	log *zap.Logger,
) *HotelService {
	return &HotelService{
		hotels:      hotels,
		enrollments: enrollments,
		tickets:     tickets,
		log:         log,
	}
}

func (s *HotelService) GetHotels(ctx context.Context, userID uint) ([]models.Hotel, error) {
	if err := checkHotelEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return nil, err
	}

	hotels, err := s.hotels.FindAll(ctx)
	if err != nil {
		s.log.Error("failed to list hotels", zap.Error(err))
		return nil, apperrors.Internal("failed to list hotels", err)
	}
	if len(hotels) == 0 {
		return nil, apperrors.NotFound("no hotels available")
	}
	return hotels, nil
}

func (s *HotelService) GetHotelRooms(ctx context.Context, userID, hotelID uint) (*models.Hotel, error) {
	if err := checkHotelEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return nil, err
	}

	if hotelID == 0 {
		return nil, apperrors.NotFound("hotel not found")
	}
	hotel, err := s.hotels.FindWithRooms(ctx, hotelID)
	if err != nil {
		s.log.Error("failed to load hotel rooms", zap.Uint("hotel_id", hotelID), zap.Error(err))
		return nil, apperrors.Internal("failed to load hotel rooms", err)
	}
	if hotel == nil {
		return nil, apperrors.NotFound("hotel not found")
	}
	return hotel, nil
}
