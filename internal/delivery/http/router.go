package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"weddingrsvp/internal/delivery/http/controllers"
	"weddingrsvp/internal/delivery/http/middleware"
	"weddingrsvp/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(guestController *controllers.GuestController, healthController *controllers.HealthController, gate domain.SessionGate, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// Routes that answer 404 when the gate refuses, so unauthenticated callers learn nothing.
	hidden := middleware.RequireSession(gate, http.StatusNotFound, logger)
	// Routes that answer 401.
	guarded := middleware.RequireSession(gate, http.StatusUnauthorized, logger)

	mux.HandleFunc("/api/guest/validate", hidden(guestController.Validate))
	mux.HandleFunc("GET /api/guest/find/rsvp", hidden(guestController.Find))
	mux.HandleFunc("GET /api/guest/rsvp", hidden(guestController.Find))
	mux.HandleFunc("GET /api/guest/check/rsvp", hidden(guestController.Check))
	mux.HandleFunc("POST /api/guest/rsvp", guarded(guestController.Submit))

	mux.HandleFunc("GET /healthz", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
