package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gabrielleitesep/Drivent4/internal/auth"
	"github.com/gabrielleitesep/Drivent4/internal/service"
)

type HotelHandler struct {
	service *service.HotelService
}

func NewHotelHandler(service *service.HotelService) *HotelHandler {
	return &HotelHandler{service: service}
}

type HotelSummary struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type RoomSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Booked   int    `json:"booked" doc:"Number of current bookings in the room"`
}

type ListHotelsRequest struct{}

type ListHotelsResponse struct {
	Body struct {
		Hotels []HotelSummary `json:"hotels"`
	}
}

func (h *HotelHandler) HandleListHotels(ctx context.Context, input *ListHotelsRequest) (*ListHotelsResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	hotels, err := h.service.GetHotels(ctx, userID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	res := &ListHotelsResponse{}
	res.Body.Hotels = make([]HotelSummary, 0, len(hotels))
	for _, hotel := range hotels {
		res.Body.Hotels = append(res.Body.Hotels, HotelSummary{
			ID:    hotel.ID,
			Name:  hotel.Name,
			Image: hotel.Image,
		})
	}
	return res, nil
}

type GetHotelRoomsRequest struct {
	HotelID uint `path:"hotelId" doc:"ID of the hotel"`
}

type GetHotelRoomsResponse struct {
	Body struct {
		ID    uint          `json:"id"`
		Name  string        `json:"name"`
		Image string        `json:"image"`
		Rooms []RoomSummary `json:"rooms"`
	}
}

func (h *HotelHandler) HandleGetHotelRooms(ctx context.Context, input *GetHotelRoomsRequest) (*GetHotelRoomsResponse, error) {
	userID, ok := ctx.Value(auth.UserIDKey).(uint)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	hotel, err := h.service.GetHotelRooms(ctx, userID, input.HotelID)
	if err != nil {
		return nil, mapServiceError(err)
	}

	res := &GetHotelRoomsResponse{}
	res.Body.ID = hotel.ID
	res.Body.Name = hotel.Name
	res.Body.Image = hotel.Image
	res.Body.Rooms = make([]RoomSummary, 0, len(hotel.Rooms))
	for _, room := range hotel.Rooms {
		res.Body.Rooms = append(res.Body.Rooms, RoomSummary{
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.Capacity,
			Booked:   len(room.Bookings),
		})
	}
	return res, nil
}
