package handlers

import (
	"net/http"
	"strconv"

	"github.com/humbertoconstantino/auth-api/internal/services"
	"github.com/rs/zerolog/log"
)

// EventHandler serves the authentication audit trail.
type EventHandler struct {
	audit services.AuditRecorder
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(audit services.AuditRecorder) *EventHandler {
	return &EventHandler{audit: audit}
}

// GetRecent returns the most recent authentication events, newest first.
// An optional "limit" query parameter caps the result (default 50).
func (h *EventHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			respondMsg(w, http.StatusUnprocessableEntity, "limit must be a positive integer")
			return
		}
		limit = n
	}

	events, err := h.audit.GetRecentEvents(limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch auth events")
		respondMsg(w, http.StatusInternalServerError, "server error, please try again")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{"events": events})
}
