package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/humbertoconstantino/auth-api/internal/api/handlers"
	"github.com/humbertoconstantino/auth-api/internal/auth"
	"github.com/humbertoconstantino/auth-api/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, auditService services.AuditRecorder, tokens *auth.TokenManager) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"}, // Adjust for your frontend URL
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokens, auditService)
	userHandler := handlers.NewUserHandler(userService)
	eventHandler := handlers.NewEventHandler(auditService)

	// Open routes
	r.Get("/", userHandler.Welcome)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
	})

	// Routes behind the access guard
	r.Group(func(r chi.Router) {
		r.Use(tokens.Middleware())
		r.Get("/user/me", userHandler.GetMe)
		r.Get("/user/{id}", userHandler.Get)
		r.Get("/events", eventHandler.GetRecent)
	})

	return r
}
