package database

import (
	"log"

	"github.com/gabrielleitesep/Drivent4/internal/config"
	"github.com/gabrielleitesep/Drivent4/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Enrollment{},
		&models.Address{},
		&models.TicketType{},
		&models.Ticket{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	return db
}
