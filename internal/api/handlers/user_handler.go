package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/humbertoconstantino/auth-api/internal/auth"
	"github.com/humbertoconstantino/auth-api/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user lookup.
type UserHandler struct {
	users services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users services.UserServiceProvider) *UserHandler {
	return &UserHandler{users: users}
}

// Welcome is the open root route.
func (h *UserHandler) Welcome(w http.ResponseWriter, r *http.Request) {
	respondMsg(w, http.StatusOK, "welcome to the API")
}

// Get handles retrieving a user by their ID.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.respondUser(w, chi.URLParam(r, "id"))
}

// GetMe retrieves the currently authenticated user from the token claims.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("Could not retrieve user claims from context")
		respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		return
	}
	h.respondUser(w, claims.UserID)
}

func (h *UserHandler) respondUser(w http.ResponseWriter, id string) {
	user, err := h.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			respondMsg(w, http.StatusNotFound, "user not found")
			return
		}
		log.Error().Err(err).Str("user_id", id).Msg("Failed to get user by ID")
		respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
