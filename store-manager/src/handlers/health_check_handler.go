package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/apiresponses"
)

const pingTimeout = 2 * time.Second

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store   Pinger
	service string
	version string
	logger  *slog.Logger
}

func NewHealthHandler(store Pinger, service, version string, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{store: store, service: service, version: version, logger: logger}
}

// HealthCheck answers 200 when the store responds and 503 otherwise.
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
	defer cancel()

	resp := apiresponses.HealthResponse{
		Status:    "ok",
		Service:   h.service,
		Version:   h.version,
		Checks:    map[string]string{"store": "ok"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	status := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		h.logger.WarnContext(ctx, "Health check failed", slog.String("error", err.Error()))
		resp.Status = "unavailable"
		resp.Checks["store"] = err.Error()
		status = http.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}
