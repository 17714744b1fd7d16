package controllers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthInfo describes the wiring chosen at startup.
type HealthInfo struct {
	Store string `json:"store"`
	Queue bool   `json:"queue"`
}

// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /healthz [get]
func HealthCheck(info HealthInfo) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "store": info.Store, "queue": info.Queue})
	}
}
