package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
)

type HealthHandler struct {
	db *sqlx.DB // nil when running on the in-memory backend
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns basic health status
// GET /health
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"service": "session-service",
	})
}

// Ready returns readiness status, including the session backend
// GET /ready
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	database := "not configured"
	if h.db != nil {
		database = "ok"
		if err := h.db.PingContext(c.Context()); err != nil {
			database = "unreachable"
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "not ready",
				"checks": fiber.Map{"database": database},
			})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ready",
		"checks": fiber.Map{"database": database},
	})
}
