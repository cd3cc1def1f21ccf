// Package service holds the business rules between the HTTP handlers and
// the repositories. Eligibility checks run in a fixed order and fail fast
// with an apperrors kind the handlers map onto HTTP statuses.
package service

import (
	"context"
	"errors"

	"github.com/gabrielleitesep/Drivent4/internal/apperrors"
	"github.com/gabrielleitesep/Drivent4/internal/models"
	"github.com/gabrielleitesep/Drivent4/internal/repository"
	"go.uber.org/zap"
)

type BookingService struct {
	bookings    *repository.BookingRepository
	enrollments *repository.EnrollmentRepository
	tickets     *repository.TicketRepository
	log         *zap.Logger
}

func NewBookingService(
	bookings *repository.BookingRepository,
	enrollments *repository.EnrollmentRepository,
	tickets *repository.TicketRepository,
	log *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:    bookings,
		enrollments: enrollments,
		tickets:     tickets,
		log:         log,
	}
}

func (s *BookingService) GetBooking(ctx context.Context, userID uint) (*models.Booking, error) {
	booking, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up booking", err)
	}
	if booking == nil {
		return nil, apperrors.NotFound("user has no booking")
	}
	return booking, nil
}

// CreateBooking books a room for the user after checking, in order:
// enrollment exists, ticket is paid/in-person/includes hotel, room id is
// valid, room exists with free capacity.
func (s *BookingService) CreateBooking(ctx context.Context, userID, roomID uint) (*models.Booking, error) {
	if err := checkHotelEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return nil, err
	}
	if err := s.checkRoomAvailability(ctx, roomID); err != nil {
		return nil, err
	}

	booking, err := s.bookings.Create(ctx, roomID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomFull) {
			return nil, apperrors.Forbidden("room is at full capacity")
		}
		s.log.Error("failed to create booking", zap.Uint("user_id", userID), zap.Uint("room_id", roomID), zap.Error(err))
		return nil, apperrors.Internal("failed to create booking", err)
	}

	s.log.Info("booking created", zap.Uint("booking_id", booking.ID), zap.Uint("user_id", userID), zap.Uint("room_id", roomID))
	return booking, nil
}

// UpdateBooking moves the user's booking to another room. Runs the same
// checks as CreateBooking, then requires a valid booking id and an existing
// booking for the user.
func (s *BookingService) UpdateBooking(ctx context.Context, userID, roomID, bookingID uint) (*models.Booking, error) {
	if err := checkHotelEligibility(ctx, s.enrollments, s.tickets, userID); err != nil {
		return nil, err
	}
	if err := s.checkRoomAvailability(ctx, roomID); err != nil {
		return nil, err
	}

	if bookingID == 0 {
		return nil, apperrors.NotFound("booking not found")
	}
	current, err := s.bookings.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperrors.Internal("failed to look up booking", err)
	}
	if current == nil {
		return nil, apperrors.NotFound("user has no booking")
	}

	booking, err := s.bookings.Update(ctx, bookingID, roomID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomFull) {
			return nil, apperrors.Forbidden("room is at full capacity")
		}
		if errors.Is(err, repository.ErrBookingNotFound) {
			return nil, apperrors.NotFound("booking not found")
		}
		s.log.Error("failed to update booking", zap.Uint("booking_id", bookingID), zap.Uint("room_id", roomID), zap.Error(err))
		return nil, apperrors.Internal("failed to update booking", err)
	}

	s.log.Info("booking updated", zap.Uint("booking_id", booking.ID), zap.Uint("user_id", userID), zap.Uint("room_id", roomID))
	return booking, nil
}

// checkRoomAvailability enforces the documented room checks: a zero room id
// is not found, a missing or full room is forbidden. The authoritative
// capacity check happens again inside the repository transaction.
func (s *BookingService) checkRoomAvailability(ctx context.Context, roomID uint) error {
	if roomID == 0 {
		return apperrors.NotFound("room not found")
	}
	room, err := s.bookings.FindRoom(ctx, roomID)
	if err != nil {
		return apperrors.Internal("failed to look up room", err)
	}
	if room == nil || room.Capacity <= len(room.Bookings) {
		return apperrors.Forbidden("room is unavailable")
	}
	return nil
}
