package services

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/humbertoconstantino/auth-api/internal/models"
)

// AuditRecorder defines the interface for the authentication audit trail.
type AuditRecorder interface {
	RecordEvent(eventType, level, message string, userID *string) error
	GetRecentEvents(limit int) ([]models.AuthEvent, error)
}

// AuditService persists authentication events to the database.
type AuditService struct {
	db *sql.DB
}

// NewAuditService creates a new AuditService.
func NewAuditService(db *sql.DB) *AuditService {
	return &AuditService{db: db}
}

// RecordEvent logs a new authentication event to the database.
func (s *AuditService) RecordEvent(eventType, level, message string, userID *string) error {
	event := models.AuthEvent{
		ID:      uuid.New().String(),
		Type:    eventType,
		Level:   level,
		Message: message,
		UserID:  userID,
	}

	stmt, err := s.db.Prepare("INSERT INTO auth_events (id, type, level, message, user_id) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.Exec(event.ID, event.Type, event.Level, event.Message, event.UserID)
	return err
}

// GetRecentEvents retrieves the most recent authentication events.
func (s *AuditService) GetRecentEvents(limit int) ([]models.AuthEvent, error) {
	rows, err := s.db.Query("SELECT id, type, level, message, user_id, created_at FROM auth_events ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.AuthEvent
	for rows.Next() {
		var event models.AuthEvent
		if err := rows.Scan(&event.ID, &event.Type, &event.Level, &event.Message, &event.UserID, &event.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
