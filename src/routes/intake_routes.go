package routes

import (
	"github.com/gofiber/fiber/v2"
)

func intakeRoutes(app *fiber.App, h Handlers) {
	app.Post("/api/lead", h.Intake.CaptureLead)
	app.Post("/", h.Intake.RelayForm)
}
