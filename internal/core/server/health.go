package server

import (
	"context"
	"net/http"
	"time"

	"announcebar/internal/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// Pinger is a dependency that can report its reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports the state of the service dependencies.
type HealthHandler struct {
	database Pinger
	cache    Pinger
}

// NewHealthHandler creates a HealthHandler. A failing cache degrades but does not fail the check.
func NewHealthHandler(database, cache Pinger) *HealthHandler {
	return &HealthHandler{database: database, cache: cache}
}

// Check handles GET /healthz.
// @Summary Liveness and dependency check
// @Description Reports whether the configuration store and the geo cache are reachable.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	body := fiber.Map{"status": "ok", "database": "ok", "cache": "ok"}

	if err := h.database.Ping(ctx); err != nil {
		logger.Get().Error("Health check: database unreachable", zap.Error(err))
		status = http.StatusServiceUnavailable
		body["status"] = "unavailable"
		body["database"] = "unreachable"
	}
	if h.cache != nil {
		if err := h.cache.Ping(ctx); err != nil {
			logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
			body["cache"] = "unreachable"
			if status == http.StatusOK {
				body["status"] = "degraded"
			}
		}
	}

	return c.Status(status).JSON(body)
}
