package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gabrielleitesep/Drivent4/internal/config"
	"github.com/gabrielleitesep/Drivent4/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAuthTest(t *testing.T) (*AuthHandler, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Session{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	cfg := &config.Config{JWTSecret: "test-secret"}
	return NewAuthHandler(cfg, db), db
}

func TestAuthMiddleware(t *testing.T) {
	handler, db := setupAuthTest(t)

	user := models.User{Email: "attendee@test.com"}
	db.Create(&user)

	var seenUserID uint
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := r.Context().Value(UserIDKey).(uint)
		seenUserID = id
		w.WriteHeader(http.StatusOK)
	})
	middleware := handler.AuthMiddleware(next)

	t.Run("ValidTokenWithSession", func(t *testing.T) {
		token, err := handler.CreateSession(user.ID)
		if err != nil {
			t.Fatalf("CreateSession returned error: %v", err)
		}

		req, _ := http.NewRequest("GET", "/booking", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Errorf("expected status OK, got %v", rr.Code)
		}
		if seenUserID != user.ID {
			t.Errorf("expected user id %d in context, got %d", user.ID, seenUserID)
		}
	})

	t.Run("ValidTokenWithoutSession", func(t *testing.T) {
		token, err := handler.GenerateToken(user.ID)
		if err != nil {
			t.Fatalf("GenerateToken returned error: %v", err)
		}

		req, _ := http.NewRequest("GET", "/booking", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %v", rr.Code)
		}
	})

	t.Run("InvalidToken", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/booking", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %v", rr.Code)
		}
	})

	t.Run("MissingHeader", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/booking", nil)
		rr := httptest.NewRecorder()
		middleware.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("expected status 401, got %v", rr.Code)
		}
	})
}
