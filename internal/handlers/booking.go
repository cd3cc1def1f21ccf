package handlers

import (
	"context"
	"log"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gabrielleitesep/Drivent4/internal/apperrors"
	"github.com/gabrielleitesep/Drivent4/internal/auth"
	"github.com/gabrielleitesep/Drivent4/internal/notifier"
	"github.com/gabrielleitesep/Drivent4/internal/service"
)

type BookingHandler struct {
	service  *service.BookingService
	notifier notifier.Notifier
}

func NewBookingHandler(service *service.BookingService, notifier notifier.Notifier) *BookingHandler {
	return &BookingHandler{service: service, notifier: notifier}
}

type GetBookingRequest struct{}

type GetBookingResponse struct {
	Body struct {
		ID   uint `json:"id"`
		Room uint `json:"Room" doc:"ID of the booked room"`
	}
}

func (h *BookingHandler) HandleGetBooking(ctx context.Context, input *GetBookingRequest) (*GetBookingResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	booking, err := h.service.GetBooking(ctx, userID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	res := &GetBookingResponse{}
	res.Body.ID = booking.ID
	res.Body.Room = booking.RoomID
	return res, nil
}

type CreateBookingRequest struct {
	Body struct {
		RoomID uint `json:"roomId" doc:"ID of the room to book"`
	}
}

type BookingResponse struct {
	Body struct {
		ID     uint `json:"id"`
		UserID uint `json:"userId"`
		RoomID uint `json:"roomId"`
	}
}

func (h *BookingHandler) HandleCreateBooking(ctx context.Context, input *CreateBookingRequest) (*BookingResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	booking, err := h.service.CreateBooking(ctx, userID, input.Body.RoomID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyBookingCreated(userID, *booking); err != nil {
			log.Printf("Failed to notify booking creation: %v", err)
		}
	}

	res := &BookingResponse{}
	res.Body.ID = booking.ID
	res.Body.UserID = booking.UserID
	res.Body.RoomID = booking.RoomID
	return res, nil
}

type UpdateBookingRequest struct {
	BookingID uint `path:"bookingId" doc:"ID of the booking to change"`
	Body      struct {
		RoomID uint `json:"roomId" doc:"ID of the new room"`
	}
}

func (h *BookingHandler) HandleUpdateBooking(ctx context.Context, input *UpdateBookingRequest) (*BookingResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	booking, err := h.service.UpdateBooking(ctx, userID, input.Body.RoomID, input.BookingID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	if h.notifier != nil {
		if err := h.notifier.NotifyBookingMoved(userID, *booking); err != nil {
			log.Printf("Failed to notify booking change: %v", err)
		}
	}

	res := &BookingResponse{}
	res.Body.ID = booking.ID
	res.Body.UserID = booking.UserID
	res.Body.RoomID = booking.RoomID
	return res, nil
}

// mapServiceError translates the service error kinds onto the documented
// statuses: not found → 404, forbidden → 403, anything else → 500.
func mapServiceError(err error) error {
	switch {
	case apperrors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())
	case apperrors.IsForbidden(err):
		return huma.Error403Forbidden(err.Error())
	default:
		return huma.Error500InternalServerError("Internal server error", err)
	}
}
