package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitorApp() *fiber.App {
	app := fiber.New()
	app.Use(VisitorSession(VisitorConfig{Secret: []byte("s3cret")}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString(VisitorID(c)) })
	return app
}

func visit(t *testing.T, app *fiber.App, cookie *http.Cookie) (string, *http.Cookie) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	for _, c := range resp.Cookies() {
		if c.Name == VisitorCookie {
			return string(body), c
		}
	}
	return string(body), nil
}

func TestVisitorSession(t *testing.T) {
	app := newVisitorApp()

	t.Run("issues a cookie on first visit", func(t *testing.T) {
		id, cookie := visit(t, app, nil)
		assert.NotEmpty(t, id)
		require.NotNil(t, cookie)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("reuses a valid cookie", func(t *testing.T) {
		id, cookie := visit(t, app, nil)
		again, reissued := visit(t, app, cookie)
		assert.Equal(t, id, again)
		assert.Nil(t, reissued)
	})

	t.Run("replaces a forged cookie", func(t *testing.T) {
		id, cookie := visit(t, app, &http.Cookie{Name: VisitorCookie, Value: "forged.token.value"})
		assert.NotEmpty(t, id)
		assert.NotNil(t, cookie)
	})

	t.Run("a cookie signed elsewhere is not trusted", func(t *testing.T) {
		other := fiber.New()
		other.Use(VisitorSession(VisitorConfig{Secret: []byte("different")}))
		other.Get("/", func(c *fiber.Ctx) error { return c.SendString(VisitorID(c)) })
		foreignID, foreign := visit(t, other, nil)

		id, _ := visit(t, app, foreign)
		assert.NotEqual(t, foreignID, id)
	})
}
