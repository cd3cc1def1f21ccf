package handlers

import (
	"net/http"
	"testing"

	"github.com/gabrielleitesep/Drivent4/internal/models"
	"github.com/gabrielleitesep/Drivent4/internal/repository"
	"github.com/gabrielleitesep/Drivent4/internal/service"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHotelHandler(t *testing.T) (*HotelHandler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Enrollment{},
		&models.Address{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	svc := service.NewHotelService(
		repository.NewHotelRepository(db),
		repository.NewEnrollmentRepository(db),
		repository.NewTicketRepository(db),
		zap.NewNop(),
	)
	return NewHotelHandler(svc), db
}

func TestHandleListHotels(t *testing.T) {
	handler, db := setupHotelHandler(t)
	user := seedEligibleUser(t, db)
	db.Create(&models.Hotel{Name: "Grand Hotel", Image: "http://img/grand.png"})

	resp, err := handler.HandleListHotels(authedContext(user.ID), &ListHotelsRequest{})
	if err != nil {
		t.Fatalf("HandleListHotels returned error: %v", err)
	}
	if len(resp.Body.Hotels) != 1 {
		t.Fatalf("expected 1 hotel, got %d", len(resp.Body.Hotels))
	}
	if resp.Body.Hotels[0].Name != "Grand Hotel" {
		t.Errorf("unexpected hotel %+v", resp.Body.Hotels[0])
	}
}

func TestHandleListHotels_NoHotels(t *testing.T) {
	handler, db := setupHotelHandler(t)
	user := seedEligibleUser(t, db)

	_, err := handler.HandleListHotels(authedContext(user.ID), &ListHotelsRequest{})
	if status := errStatus(t, err); status != http.StatusNotFound {
		t.Errorf("expected 404, got %d", status)
	}
}

func TestHandleGetHotelRooms(t *testing.T) {
	handler, db := setupHotelHandler(t)
	user := seedEligibleUser(t, db)
	hotel := models.Hotel{Name: "Grand Hotel"}
	db.Create(&hotel)
	room := models.Room{Name: "101", Capacity: 3, HotelID: hotel.ID}
	db.Create(&room)
	db.Create(&models.Booking{UserID: user.ID, RoomID: room.ID})

	resp, err := handler.HandleGetHotelRooms(authedContext(user.ID), &GetHotelRoomsRequest{HotelID: hotel.ID})
	if err != nil {
		t.Fatalf("HandleGetHotelRooms returned error: %v", err)
	}
	if len(resp.Body.Rooms) != 1 {
		t.Fatalf("expected 1 room, got %d", len(resp.Body.Rooms))
	}
	if resp.Body.Rooms[0].Booked != 1 {
		t.Errorf("expected 1 booked, got %d", resp.Body.Rooms[0].Booked)
	}
}

func TestHandleGetHotelRooms_IneligibleTicket(t *testing.T) {
	handler, db := setupHotelHandler(t)
	user := models.User{Email: "remote@test.com"}
	db.Create(&user)
	enrollment := models.Enrollment{UserID: user.ID, Name: "Remote Attendee"}
	db.Create(&enrollment)
	ticketType := models.TicketType{Name: "Remote", IsRemote: true, IncludesHotel: false}
	db.Create(&ticketType)
	db.Create(&models.Ticket{EnrollmentID: enrollment.ID, TicketTypeID: ticketType.ID, Status: models.TicketStatusPaid})
	hotel := models.Hotel{Name: "Grand Hotel"}
	db.Create(&hotel)

	_, err := handler.HandleGetHotelRooms(authedContext(user.ID), &GetHotelRoomsRequest{HotelID: hotel.ID})
	if status := errStatus(t, err); status != http.StatusForbidden {
		t.Errorf("expected 403, got %d", status)
	}
}
