package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/gabrielleitesep/Drivent4/internal/auth"
	"github.com/gabrielleitesep/Drivent4/internal/config"
	"github.com/gabrielleitesep/Drivent4/internal/database"
	"github.com/gabrielleitesep/Drivent4/internal/handlers"
	"github.com/gabrielleitesep/Drivent4/internal/notifier"
	"github.com/gabrielleitesep/Drivent4/internal/repository"
	"github.com/gabrielleitesep/Drivent4/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Connect to Database
	db := database.Connect(cfg)

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Notifier
	var bookingNotifier notifier.Notifier
	if cfg.DiscordBotToken != "" {
		session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
		if err != nil {
			log.Printf("Discord notifier not initialized: %v", err)
		} else {
			bookingNotifier = notifier.NewDiscordNotifier(session, cfg.DiscordNotificationsChannelID)
		}
	}

	// Initialize Repositories and Services
	bookingRepo := repository.NewBookingRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	hotelRepo := repository.NewHotelRepository(db)

	bookingService := service.NewBookingService(bookingRepo, enrollmentRepo, ticketRepo, logger)
	hotelService := service.NewHotelService(hotelRepo, enrollmentRepo, ticketRepo, logger)

	// Initialize Handlers
	authHandler := auth.NewAuthHandler(cfg, db)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingNotifier)
	hotelHandler := handlers.NewHotelHandler(hotelService)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, authHandler, bookingHandler, hotelHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
