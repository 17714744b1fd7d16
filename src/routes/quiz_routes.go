package routes

import (
	"Backend-Brightlane-Leadkit/src/controllers"

	"github.com/gofiber/fiber/v2"
)

func quizRoutes(app *fiber.App, h Handlers) {
	quiz := app.Group("/quiz", h.Visitor)
	quiz.Get("/", h.Quiz.ShowQuiz)
	quiz.Post("/answer", h.Quiz.Answer)
	quiz.Post("/next", h.Quiz.Next)
	quiz.Post("/back", h.Quiz.Back)
	quiz.Post("/contact", h.Quiz.Contact)
	quiz.Post("/restart", h.Quiz.Restart)

	app.Get("/api/quiz", h.Visitor, h.Quiz.GetState)
	app.Get("/api/questions", controllers.GetQuestions)
}
