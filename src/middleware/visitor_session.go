package middleware

import (
	"time"

	"Backend-Brightlane-Leadkit/src/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	VisitorCookie  = "bl_visitor"
	visitorIDLocal = "visitorId"
)

type VisitorConfig struct {
	Secret []byte
	TTL    time.Duration
	Secure bool
}

// VisitorSession gives every request a visitor id. A valid signed cookie is
// reused; otherwise a new id is issued and the cookie set.
func VisitorSession(cfg VisitorConfig) fiber.Handler {
	if cfg.TTL <= 0 {
		cfg.TTL = 30 * 24 * time.Hour
	}
	return func(c *fiber.Ctx) error {
		if claims, err := utils.ParseVisitorToken(cfg.Secret, c.Cookies(VisitorCookie)); err == nil {
			c.Locals(visitorIDLocal, claims.VisitorID)
			return c.Next()
		}

		id := uuid.NewString()
		token, err := utils.GenerateVisitorToken(cfg.Secret, id, cfg.TTL)
		if err != nil {
			return utils.HandleError(c, fiber.StatusInternalServerError, "could not start a session")
		}
		c.Cookie(&fiber.Cookie{
			Name:     VisitorCookie,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(cfg.TTL),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
		c.Locals(visitorIDLocal, id)
		return c.Next()
	}
}

// VisitorID returns the id set by VisitorSession, or "".
func VisitorID(c *fiber.Ctx) string {
	id, _ := c.Locals(visitorIDLocal).(string)
	return id
}
