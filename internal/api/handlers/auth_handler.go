package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/humbertoconstantino/auth-api/internal/auth"
	"github.com/humbertoconstantino/auth-api/internal/services"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles registration and login.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenManager
	audit  services.AuditRecorder
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenManager, audit services.AuditRecorder) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, audit: audit}
}

// RegisterPayload defines the structure for registration requests.
type RegisterPayload struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// LoginPayload defines the structure for login requests.
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new user registration.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	switch {
	case payload.Name == "":
		respondMsg(w, http.StatusUnprocessableEntity, "name is required")
		return
	case payload.Email == "":
		respondMsg(w, http.StatusUnprocessableEntity, "email is required")
		return
	case payload.Password == "":
		respondMsg(w, http.StatusUnprocessableEntity, "password is required")
		return
	case payload.ConfirmPassword == "":
		respondMsg(w, http.StatusUnprocessableEntity, "password confirmation is required")
		return
	case payload.Password != payload.ConfirmPassword:
		respondMsg(w, http.StatusUnprocessableEntity, "passwords do not match")
		return
	}

	// Fast-path conflict answer; the insert below is still guarded by the
	// store's UNIQUE constraint if another request wins the race.
	if _, err := h.users.GetUserByEmail(payload.Email); err == nil {
		respondMsg(w, http.StatusUnprocessableEntity, "email already in use")
		return
	} else if !errors.Is(err, services.ErrUserNotFound) {
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to check for existing user")
		respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		return
	}

	user, err := h.users.CreateUser(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			respondMsg(w, http.StatusUnprocessableEntity, "email already in use")
			return
		}
		log.Error().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		return
	}

	h.recordEvent("user.registered", "info", "new user registered", &user.ID)
	respondMsg(w, http.StatusCreated, "user created successfully")
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMsg(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.Email == "" {
		respondMsg(w, http.StatusUnprocessableEntity, "email is required")
		return
	}
	if payload.Password == "" {
		respondMsg(w, http.StatusUnprocessableEntity, "password is required")
		return
	}

	user, err := h.users.AuthenticateUser(payload.Email, payload.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			respondMsg(w, http.StatusNotFound, "user not found")
		case errors.Is(err, services.ErrInvalidPassword):
			log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
			h.recordEvent("user.login_failed", "warn", "wrong password", nil)
			respondMsg(w, http.StatusUnprocessableEntity, "invalid password")
		default:
			log.Error().Err(err).Str("email", payload.Email).Msg("Failed to authenticate user")
			respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		}
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		return
	}

	h.recordEvent("user.login", "info", "user authenticated", &user.ID)
	respondJSON(w, http.StatusOK, map[string]string{
		"msg":   "authentication successful",
		"token": token,
	})
}

// recordEvent writes to the audit trail without failing the request.
func (h *AuthHandler) recordEvent(eventType, level, message string, userID *string) {
	if err := h.audit.RecordEvent(eventType, level, message, userID); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to record auth event")
	}
}
