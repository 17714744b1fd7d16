package controllers

import (
	"errors"
	"log"
	"math"
	"strconv"

	"Backend-Brightlane-Leadkit/src/models"
	"Backend-Brightlane-Leadkit/src/services/intake"

	"github.com/gofiber/fiber/v2"
)

type IntakeController struct {
	service  *intake.Service
	formName string
}

func NewIntakeController(s *intake.Service, formName string) *IntakeController {
	return &IntakeController{service: s, formName: formName}
}

// @Summary      Capture a lead
// @Description  Accepts lead_captured and kit_requested events. Limited to 5 requests per client per 15 minutes.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        body  body  models.LeadEvent  true  "Lead event"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      403  {object}  map[string]interface{}
// @Failure      429  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]interface{}
// @Router       /api/lead [post]
func (ic *IntakeController) CaptureLead(c *fiber.Ctx) error {
	var ev models.LeadEvent
	if err := c.BodyParser(&ev); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Invalid JSON body"})
	}
	return ic.accept(c, ev)
}

// @Summary      Static form relay
// @Description  Urlencoded form post with form-name, as sent by the site's static forms.
// @Tags         intake
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        form-name  formData  string  true  "Form name"
// @Param        email      formData  string  true  "Email"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       / [post]
func (ic *IntakeController) RelayForm(c *fiber.Ctx) error {
	name := c.FormValue(models.FormNameField)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Missing form-name"})
	}
	if name != ic.formName {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"ok": false, "error": "Unknown form"})
	}
	ev := models.LeadEventFromForm(func(k string) string { return c.FormValue(k) })
	return ic.accept(c, ev)
}

func (ic *IntakeController) accept(c *fiber.Ctx, ev models.LeadEvent) error {
	err := ic.service.Accept(c.UserContext(), intake.Request{
		Event:      ev,
		Origin:     c.Get(fiber.HeaderOrigin),
		Referer:    c.Get(fiber.HeaderReferer),
		Identifier: "ip:" + c.IP(),
		UserAgent:  c.Get(fiber.HeaderUserAgent),
	})
	if err == nil {
		return c.JSON(fiber.Map{"ok": true})
	}

	var limited *intake.RateLimitError
	var invalid *intake.ValidationError
	switch {
	case errors.Is(err, intake.ErrOriginNotAllowed):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"ok": false, "error": "Origin not allowed"})
	case errors.As(err, &limited):
		secs := int(math.Ceil(limited.RetryAfter().Seconds()))
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(secs))
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"ok": false, "error": "Too many requests", "retryAfter": secs})
	case errors.As(err, &invalid):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"ok": false, "error": "Invalid lead payload", "fields": invalid.Fields})
	case errors.Is(err, intake.ErrRelayFailed):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"ok": false, "error": "Could not forward lead"})
	default:
		log.Printf("❌ [intake] %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"ok": false, "error": "Internal error"})
	}
}
