package models

import "time"

// AuthEvent is a persisted record of an authentication-related action,
// such as a registration or a failed login.
type AuthEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	UserID    *string   `json:"userId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
