package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gabrielleitesep/Drivent4/internal/config"
	"github.com/gabrielleitesep/Drivent4/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	GithubAuthorizeEndpoint = "https://github.com/login/oauth/authorize"
	GithubTokenEndpoint     = "https://github.com/login/oauth/access_token"
	GithubUserAPI           = "https://api.github.com/user"

	TokenDuration = 24 * time.Hour
)

type AuthHandler struct {
	oauthConfig *oauth2.Config
	db          *gorm.DB
	cfg         *config.Config
}

func NewAuthHandler(cfg *config.Config, db *gorm.DB) *AuthHandler {
	return &AuthHandler{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GithubClientID,
			ClientSecret: cfg.GithubClientSecret,
			RedirectURL:  cfg.GithubRedirectURL,
			Scopes:       []string{"read:user", "user:email"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  GithubAuthorizeEndpoint,
				TokenURL: GithubTokenEndpoint,
			},
		},
		db:  db,
		cfg: cfg,
	}
}

type SignUpRequest struct {
	Body struct {
		Email    string `json:"email" format:"email" doc:"Email address" required:"true"`
		Password string `json:"password" minLength:"6" doc:"Password, at least 6 characters" required:"true"`
	}
}

type SignUpResponse struct {
	Status int
	Body   struct {
		ID    uint   `json:"id"`
		Email string `json:"email"`
	}
}

func (h *AuthHandler) HandleSignUp(ctx context.Context, input *SignUpRequest) (*SignUpResponse, error) {
	var existing models.User
	if err := h.db.Where("email = ?", input.Body.Email).First(&existing).Error; err == nil {
		return nil, huma.Error409Conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Body.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user := models.User{Email: input.Body.Email, Password: string(hash)}
	if err := h.db.Create(&user).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to create user")
	}

	res := &SignUpResponse{Status: http.StatusCreated}
	res.Body.ID = user.ID
	res.Body.Email = user.Email
	return res, nil
}

type SignInRequest struct {
	Body struct {
		Email    string `json:"email" format:"email" doc:"Email address" required:"true"`
		Password string `json:"password" doc:"Password" required:"true"`
	}
}

type SignInResponse struct {
	Body struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
}

func (h *AuthHandler) HandleSignIn(ctx context.Context, input *SignInRequest) (*SignInResponse, error) {
	var user models.User
	if err := h.db.Where("email = ?", input.Body.Email).First(&user).Error; err != nil {
		return nil, huma.Error401Unauthorized("Invalid email or password")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Body.Password)) != nil {
		return nil, huma.Error401Unauthorized("Invalid email or password")
	}

	token, err := h.CreateSession(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to create session")
	}

	res := &SignInResponse{}
	res.Body.Token = token
	res.Body.User.ID = user.ID
	res.Body.User.Email = user.Email
	return res, nil
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	url := h.oauthConfig.AuthCodeURL("state", oauth2.AccessTypeOnline)
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

func (h *AuthHandler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "Code not found", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(r.Context(), code)
	if err != nil {
		http.Error(w, "Failed to exchange token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(r.Context(), token)

	resp, err := client.Get(GithubUserAPI)
	if err != nil {
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var githubUser struct {
		ID        int64  `json:"id"`
		Login     string `json:"login"`
		Email     string `json:"email"`
		AvatarURL string `json:"avatar_url"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&githubUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	githubID := fmt.Sprintf("%d", githubUser.ID)
	var user models.User
	if err := h.db.FirstOrInit(&user, models.User{GithubID: githubID}).Error; err != nil {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	user.Username = githubUser.Login
	if githubUser.Email != "" {
		user.Email = githubUser.Email
	}
	user.Avatar = githubUser.AvatarURL

	if err := h.db.Save(&user).Error; err != nil {
		http.Error(w, "Failed to save user", http.StatusInternalServerError)
		return
	}

	sessionToken, err := h.CreateSession(user.ID)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("%s?token=%s", h.cfg.FrontendURL, sessionToken), http.StatusTemporaryRedirect)
}

func (h *AuthHandler) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// CreateSession issues a JWT and persists the session row the middleware
// requires. Tokens without a session row are rejected even when the
// signature is valid.
func (h *AuthHandler) CreateSession(userID uint) (string, error) {
	token, err := h.GenerateToken(userID)
	if err != nil {
		return "", err
	}
	session := models.Session{UserID: userID, Token: token}
	if err := h.db.Create(&session).Error; err != nil {
		return "", err
	}
	return token, nil
}
