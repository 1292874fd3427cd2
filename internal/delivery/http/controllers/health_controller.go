package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"weddingrsvp/internal/delivery/http/helpers"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	Logger *slog.Logger
	DB     Pinger
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db}
}

// Health godoc
// @Summary Liveness check
// @Description Returns 200 when the guest database answers a ping.
// @Tags health
// @Success 200
// @Failure 503
// @Router /healthz [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := c.DB.PingContext(ctx); err != nil {
		c.Logger.ErrorContext(r.Context(), "health check failed", "err", err)
		helpers.WriteStatus(w, http.StatusServiceUnavailable)
		return
	}
	helpers.WriteStatus(w, http.StatusOK)
}
