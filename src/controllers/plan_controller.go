package controllers

import (
	"errors"
	"log"
	"strconv"

	"Backend-Brightlane-Leadkit/src/catalog"
	"Backend-Brightlane-Leadkit/src/middleware"
	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/services/pdf"
	"Backend-Brightlane-Leadkit/src/services/quiz"
	"Backend-Brightlane-Leadkit/src/services/render"
	"Backend-Brightlane-Leadkit/src/utils"

	"github.com/gofiber/fiber/v2"
)

type PlanController struct {
	funnel     *quiz.Funnel
	renderer   *render.Renderer
	exporter   *pdf.Exporter
	disclaimer string
}

func NewPlanController(f *quiz.Funnel, r *render.Renderer, e *pdf.Exporter, disclaimer string) *PlanController {
	return &PlanController{funnel: f, renderer: r, exporter: e, disclaimer: disclaimer}
}

// unlocked resolves :slug and the visitor's submission. ok is false when a
// response has already been written; err is the result of writing it.
func (pc *PlanController) unlocked(c *fiber.Ctx, asJSON bool) (models.Plan, *models.Submission, bool, error) {
	key, found := catalog.KeyForSlug(c.Params("slug"))
	if !found {
		return models.Plan{}, nil, false, utils.HandleError(c, fiber.StatusNotFound, "Plan not found")
	}
	sub, ok := pc.funnel.Results(c.UserContext(), middleware.VisitorID(c))
	if !ok {
		if asJSON {
			return models.Plan{}, nil, false, utils.HandleError(c, fiber.StatusForbidden, "Finish the quiz to unlock this plan")
		}
		return models.Plan{}, nil, false, c.Redirect("/quiz", fiber.StatusSeeOther)
	}
	return catalog.PlanOrDefault(key), sub, true, nil
}

// @Summary      Get a plan
// @Description  Available once the visitor has passed the contact gate.
// @Tags         plans
// @Produce      json
// @Param        slug  path  string  true  "Plan slug, e.g. lead-follow-up"
// @Success      200  {object}  models.Plan
// @Failure      403  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /api/plans/{slug} [get]
func (pc *PlanController) GetPlan(c *fiber.Ctx) error {
	plan, _, ok, err := pc.unlocked(c, true)
	if !ok {
		return err
	}
	return c.JSON(plan)
}

// @Summary      Plan page
// @Tags         plans
// @Produce      html
// @Param        slug  path  string  true  "Plan slug"
// @Success      200
// @Failure      303
// @Failure      404  {object}  models.ErrorResponse
// @Router       /plans/{slug} [get]
func (pc *PlanController) ShowPlan(c *fiber.Ctx) error {
	plan, sub, ok, err := pc.unlocked(c, wantsJSON(c))
	if !ok {
		return err
	}
	html, err := pc.renderer.Plan(render.PlanPage{Plan: plan, Submission: sub})
	if err != nil {
		log.Printf("❌ [plans] render %s: %v", plan.Key, err)
		return utils.HandleError(c, fiber.StatusInternalServerError, "Could not render page")
	}
	return sendHTML(c, fiber.StatusOK, html)
}

// @Summary      Download a plan as PDF
// @Description  Without confirm=yes this shows the disclaimer. Failed exports redirect back to the plan page.
// @Tags         plans
// @Produce      html,application/pdf
// @Param        slug     path   string  true   "Plan slug"
// @Param        confirm  query  string  false  "yes to export"
// @Success      200
// @Failure      303
// @Failure      404  {object}  models.ErrorResponse
// @Router       /plans/{slug}/pdf [get]
func (pc *PlanController) DownloadPDF(c *fiber.Ctx) error {
	plan, _, ok, err := pc.unlocked(c, wantsJSON(c))
	if !ok {
		return err
	}
	back := "/plans/" + catalog.SlugFor(plan.Key)

	if c.Query("confirm") != "yes" {
		html, err := pc.renderer.Disclaimer(render.DisclaimerPage{Plan: plan, Disclaimer: pc.disclaimer})
		if err != nil {
			log.Printf("❌ [plans] render disclaimer: %v", err)
			return c.Redirect(back, fiber.StatusSeeOther)
		}
		return sendHTML(c, fiber.StatusOK, html)
	}

	doc, err := pc.renderer.Print(plan)
	if err != nil {
		log.Printf("❌ [pdf] print view %s: %v", plan.Key, err)
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	res, err := pc.exporter.Export(c.UserContext(), middleware.VisitorID(c), plan, doc)
	if err != nil {
		if !errors.Is(err, pdf.ErrExportInProgress) {
			log.Printf("⚠️ [pdf] %s: %v", plan.Key, err)
		}
		return c.Redirect(back, fiber.StatusSeeOther)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+res.FileName+`"`)
	c.Set("X-Page-Count", strconv.Itoa(res.PageCount))
	return c.Send(res.Data)
}
