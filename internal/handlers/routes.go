package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/gabrielleitesep/Drivent4/internal/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r *chi.Mux, authHandler *auth.AuthHandler, bookingHandler *BookingHandler, hotelHandler *HotelHandler) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize Huma API
	config := huma.DefaultConfig("Drivent API", "4.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearerAuth": {
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		},
	}
	api := humachi.New(r, config)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes
	huma.Post(api, "/auth/sign-up", authHandler.HandleSignUp)
	huma.Post(api, "/auth/sign-in", authHandler.HandleSignIn)
	r.Get("/auth/github/login", authHandler.HandleLogin)
	r.Get("/auth/github/callback", authHandler.HandleCallback)

	// Protected routes live on their own sub-router so the auth middleware
	// runs before huma dispatch. Docs are only served from the public API.
	protected := chi.NewRouter()
	protected.Use(authHandler.AuthMiddleware)
	protectedConfig := config
	protectedConfig.OpenAPIPath = ""
	protectedConfig.DocsPath = ""
	protectedConfig.SchemasPath = ""
	protectedAPI := humachi.New(protected, protectedConfig)

	bearer := func(o *huma.Operation) {
		o.Security = []map[string][]string{{"bearerAuth": {}}}
	}
	huma.Get(protectedAPI, "/booking", bookingHandler.HandleGetBooking, bearer)
	huma.Post(protectedAPI, "/booking", bookingHandler.HandleCreateBooking, bearer)
	huma.Put(protectedAPI, "/booking/{bookingId}", bookingHandler.HandleUpdateBooking, bearer)
	huma.Get(protectedAPI, "/hotels", hotelHandler.HandleListHotels, bearer)
	huma.Get(protectedAPI, "/hotels/{hotelId}", hotelHandler.HandleGetHotelRooms, bearer)

	r.Mount("/", protected)
}
