package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/legalsuite/case-service/internal/persistence"
)

const dependencyProbeTimeout = 2 * time.Second

// HealthHandler answers liveness and readiness probes. Readiness requires the
// case store and the cache; lawsuit data lives only in postgres, so either
// probe failing makes the service unready.
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

type dependencyReport struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

// Live reports process liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready probes the case store and the cache with per-dependency latency.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), dependencyProbeTimeout)
	defer cancel()

	caseStore := probe(ctx, h.postgres.Ping)
	cache := probe(ctx, h.redis.Ping)

	body := fiber.Map{
		"service": h.serviceName,
		"version": h.version,
		"dependencies": fiber.Map{
			"postgres": caseStore,
			"redis":    cache,
		},
	}

	if caseStore.Status != "ok" || cache.Status != "ok" {
		body["status"] = "unready"
		return c.Status(fiber.StatusServiceUnavailable).JSON(body)
	}
	body["status"] = "ready"
	return c.JSON(body)
}

func probe(ctx context.Context, ping func(context.Context) error) dependencyReport {
	start := time.Now()
	if err := ping(ctx); err != nil {
		return dependencyReport{
			Status:    "unavailable",
			LatencyMS: time.Since(start).Milliseconds(),
			Error:     err.Error(),
		}
	}
	return dependencyReport{Status: "ok", LatencyMS: time.Since(start).Milliseconds()}
}
