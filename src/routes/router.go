package routes

import (
	"Backend-Brightlane-Leadkit/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups the controllers the routes are bound to.
type Handlers struct {
	Quiz    *controllers.QuizController
	Plans   *controllers.PlanController
	Intake  *controllers.IntakeController
	Health  fiber.Handler
	Visitor fiber.Handler
}

func InitRoutes(app *fiber.App, h Handlers) {
	intakeRoutes(app, h)
	quizRoutes(app, h)
	planRoutes(app, h)

	app.Get("/healthz", h.Health)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/quiz", fiber.StatusFound)
	})
}
