package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort   int
	DatabasePath string
	JWTSecret    string
	TokenTTL     time.Duration
}

// Load loads configuration from environment variables or sets defaults.
// The JWT secret has no default: without it every issued token would be
// forgeable, so a missing secret is a startup error.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "3000")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	ttlStr := getEnv("TOKEN_TTL", "24h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q: %w", ttlStr, err)
	}

	return &Config{
		ServerPort:   port,
		DatabasePath: getEnv("DATABASE_PATH", "./auth.db"),
		JWTSecret:    secret,
		TokenTTL:     ttl,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
