package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pusdatin-umc/helpdesk-service/internal/api/dto"
	"github.com/pusdatin-umc/helpdesk-service/internal/persistence"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, postgres *persistence.Postgres, redis *persistence.Redis) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version, postgres: postgres, redis: redis}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(dto.Envelope{Success: true, Data: fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	}})
}

// Ready checks configured dependencies. Backends running in memory are reported as such.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	deps := fiber.Map{}
	ready := true
	check := func(name string, enabled bool, ping func(context.Context) error) {
		if !enabled {
			deps[name] = "memory"
			return
		}
		if err := ping(ctx); err != nil {
			deps[name] = err.Error()
			ready = false
			return
		}
		deps[name] = "ok"
	}
	check("postgres", h.postgres.Enabled(), h.postgres.Ping)
	check("redis", h.redis.Enabled(), h.redis.Ping)

	if ready {
		return c.JSON(dto.Envelope{Success: true, Data: fiber.Map{"status": "ready", "dependencies": deps}})
	}
	return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorEnvelope{
		Success:    false,
		Error:      "DEPENDENCY_UNAVAILABLE",
		Message:    "Satu atau lebih dependensi tidak tersedia",
		StatusCode: fiber.StatusServiceUnavailable,
	})
}
