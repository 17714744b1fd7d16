package routes

import (
	"github.com/gofiber/fiber/v2"
)

func planRoutes(app *fiber.App, h Handlers) {
	plans := app.Group("/plans", h.Visitor)
	plans.Get("/:slug", h.Plans.ShowPlan)
	plans.Get("/:slug/pdf", h.Plans.DownloadPDF)

	app.Get("/api/plans/:slug", h.Visitor, h.Plans.GetPlan)
}
