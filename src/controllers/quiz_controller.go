package controllers

import (
	"errors"
	"log"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/middleware"
	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/services/leads"
	"Backend-Brightlane-Leadkit/src/services/quiz"
	"Backend-Brightlane-Leadkit/src/services/render"
	"Backend-Brightlane-Leadkit/src/utils"

	"github.com/gofiber/fiber/v2"
)

type QuizController struct {
	funnel   *quiz.Funnel
	renderer *render.Renderer
}

func NewQuizController(f *quiz.Funnel, r *render.Renderer) *QuizController {
	return &QuizController{funnel: f, renderer: r}
}

// QuizResponse is the JSON form of a quiz page.
type QuizResponse struct {
	State      quiz.State         `json:"state"`
	View       quiz.View          `json:"view"`
	Errors     leads.FieldErrors  `json:"errors,omitempty"`
	Submission *models.Submission `json:"submission,omitempty"`
	Plan       *models.Plan       `json:"plan,omitempty"`
}

type answerIn struct {
	Value string `json:"value" form:"value"`
}

type contactIn struct {
	FirstName  string `json:"firstName" form:"firstName"`
	LastName   string `json:"lastName" form:"lastName"`
	Email      string `json:"email" form:"email"`
	WebsiteURL string `json:"websiteUrl" form:"websiteUrl"`
	PagePath   string `json:"pagePath" form:"pagePath"`
}

// @Summary      Show the quiz
// @Description  Renders the current step for the visitor. utm_* query parameters are kept as attribution.
// @Tags         quiz
// @Produce      html,json
// @Success      200  {object}  QuizResponse
// @Router       /quiz [get]
func (qc *QuizController) ShowQuiz(c *fiber.Ctx) error {
	visitor := middleware.VisitorID(c)
	qc.funnel.CaptureAttribution(c.UserContext(), visitor, models.UTM{
		Source:   c.Query("utm_source"),
		Medium:   c.Query("utm_medium"),
		Campaign: c.Query("utm_campaign"),
		Term:     c.Query("utm_term"),
		Content:  c.Query("utm_content"),
	})
	return qc.respond(c, fiber.StatusOK, qc.page(c, qc.funnel.Load(c.UserContext(), visitor)))
}

// @Summary      Quiz state
// @Tags         quiz
// @Produce      json
// @Success      200  {object}  QuizResponse
// @Router       /api/quiz [get]
func (qc *QuizController) GetState(c *fiber.Ctx) error {
	p := qc.page(c, qc.funnel.Load(c.UserContext(), middleware.VisitorID(c)))
	return c.JSON(toResponse(p))
}

// @Summary      Answer the current question
// @Tags         quiz
// @Accept       json,x-www-form-urlencoded
// @Produce      html,json
// @Param        value  formData  string  true  "Option value"
// @Success      200  {object}  QuizResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /quiz/answer [post]
func (qc *QuizController) Answer(c *fiber.Ctx) error {
	var in answerIn
	if err := c.BodyParser(&in); err != nil {
		return qc.fail(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	s, err := qc.funnel.Answer(c.UserContext(), middleware.VisitorID(c), in.Value)
	return qc.afterTransition(c, s, err)
}

// @Summary      Go forward to the next question
// @Tags         quiz
// @Produce      html,json
// @Success      200  {object}  QuizResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /quiz/next [post]
func (qc *QuizController) Next(c *fiber.Ctx) error {
	s, err := qc.funnel.Next(c.UserContext(), middleware.VisitorID(c))
	return qc.afterTransition(c, s, err)
}

// @Summary      Go back one question
// @Tags         quiz
// @Produce      html,json
// @Success      200  {object}  QuizResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /quiz/back [post]
func (qc *QuizController) Back(c *fiber.Ctx) error {
	s, err := qc.funnel.Back(c.UserContext(), middleware.VisitorID(c))
	return qc.afterTransition(c, s, err)
}

// @Summary      Submit the contact gate
// @Description  Validates all four fields at once. On success the plan unlocks and the lead is forwarded in the background.
// @Tags         quiz
// @Accept       json,x-www-form-urlencoded
// @Produce      html,json
// @Param        body  body  contactIn  true  "Contact details"
// @Success      200  {object}  QuizResponse
// @Failure      409  {object}  models.ErrorResponse
// @Failure      422  {object}  QuizResponse
// @Router       /quiz/contact [post]
func (qc *QuizController) Contact(c *fiber.Ctx) error {
	var in contactIn
	if err := c.BodyParser(&in); err != nil {
		return qc.fail(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if in.PagePath == "" {
		in.PagePath = "/quiz"
	}

	fields := leads.ContactFields{FirstName: in.FirstName, LastName: in.LastName, Email: in.Email, WebsiteURL: in.WebsiteURL}
	res, err := qc.funnel.SubmitContact(c.UserContext(), middleware.VisitorID(c), fields, in.PagePath)
	if errors.Is(err, quiz.ErrNotAtGate) {
		if wantsJSON(c) {
			return utils.HandleError(c, fiber.StatusConflict, err.Error())
		}
		return c.Redirect("/quiz", fiber.StatusSeeOther)
	}
	if err != nil {
		log.Printf("❌ [quiz] contact: %v", err)
		return qc.fail(c, fiber.StatusInternalServerError, "Could not save your details")
	}

	p := qc.page(c, res.State)
	if res.Errors != nil {
		p.Fields = res.Fields
		p.Errors = res.Errors
		status := fiber.StatusOK
		if wantsJSON(c) {
			status = fiber.StatusUnprocessableEntity
		}
		return qc.respond(c, status, p)
	}
	if !wantsJSON(c) {
		return c.Redirect("/quiz", fiber.StatusSeeOther)
	}
	return qc.respond(c, fiber.StatusOK, p)
}

// @Summary      Start over
// @Description  Clears the wizard, the submission and any attribution for the visitor.
// @Tags         quiz
// @Produce      html,json
// @Success      200  {object}  QuizResponse
// @Router       /quiz/restart [post]
func (qc *QuizController) Restart(c *fiber.Ctx) error {
	s := qc.funnel.StartOver(c.UserContext(), middleware.VisitorID(c))
	return qc.afterTransition(c, s, nil)
}

// @Summary      List the quiz questions
// @Tags         quiz
// @Produce      json
// @Success      200  {array}  models.Question
// @Router       /api/questions [get]
func GetQuestions(c *fiber.Ctx) error {
	return c.JSON(catalog.Questions())
}

func (qc *QuizController) afterTransition(c *fiber.Ctx, s quiz.State, err error) error {
	if err != nil && wantsJSON(c) {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	if !wantsJSON(c) {
		// Post/redirect/get keeps refresh from resubmitting.
		return c.Redirect("/quiz", fiber.StatusSeeOther)
	}
	return qc.respond(c, fiber.StatusOK, qc.page(c, s))
}

// page fills in the results data when the visitor is past the gate.
func (qc *QuizController) page(c *fiber.Ctx, s quiz.State) render.QuizPage {
	p := render.QuizPage{State: s, View: s.View()}
	if s.Cursor == quiz.StepContactGate {
		p.Fields = leads.ContactFields{Email: s.Email, WebsiteURL: s.WebsiteURL}
	}
	if s.Cursor != quiz.StepResults {
		return p
	}
	key := s.SelectedPlan()
	if sub, ok := qc.funnel.Results(c.UserContext(), middleware.VisitorID(c)); ok {
		p.Submission = sub
		key = sub.PlanKey
	}
	plan := catalog.PlanOrDefault(key)
	p.Plan = &plan
	return p
}

func (qc *QuizController) respond(c *fiber.Ctx, status int, p render.QuizPage) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(toResponse(p))
	}
	html, err := qc.renderer.Quiz(p)
	if err != nil {
		log.Printf("❌ [quiz] render: %v", err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Could not render page")
	}
	return sendHTML(c, status, html)
}

func (qc *QuizController) fail(c *fiber.Ctx, status int, msg string) error {
	if wantsJSON(c) {
		return utils.HandleError(c, status, msg)
	}
	return c.Redirect("/quiz", fiber.StatusSeeOther)
}

func toResponse(p render.QuizPage) QuizResponse {
	return QuizResponse{
		State:      p.State,
		View:       p.View,
		Errors:     p.Errors,
		Submission: p.Submission,
		Plan:       p.Plan,
	}
}
