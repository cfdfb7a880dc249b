package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sefazor/saas-starter/internal/service"
	jwtPkg "github.com/sefazor/saas-starter/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newSessionApp() *fiber.App {
	app := fiber.New()
	app.Use(SessionMiddleware(jwtPkg.NewHMACVerifier(testSecret), zap.NewNop()))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.SendString(ClerkID(c))
	})
	return app
}

func whoami(t *testing.T, req *http.Request) string {
	t.Helper()
	resp, err := newSessionApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestSessionMiddleware_BearerToken(t *testing.T) {
	token, err := jwtPkg.GenerateToken(testSecret, "user_test123", "test@test.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Equal(t, "user_test123", whoami(t, req))
}

func TestSessionMiddleware_SessionCookie(t *testing.T) {
	token, err := jwtPkg.GenerateToken(testSecret, "user_cookie", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: token})

	assert.Equal(t, "user_cookie", whoami(t, req))
}

func TestSessionMiddleware_InvalidTokenIsAnonymous(t *testing.T) {
	token, err := jwtPkg.GenerateToken("wrong-secret", "user_test123", "", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	assert.Empty(t, whoami(t, req))
}

func TestSessionMiddleware_NoToken(t *testing.T) {
	assert.Empty(t, whoami(t, httptest.NewRequest(fiber.MethodGet, "/whoami", nil)))
}

func TestErrorHandler(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop())})
	app.Get("/validation", func(c *fiber.Ctx) error {
		return &service.ValidationError{Field: "Product ID", Message: "Product ID is required"}
	})
	app.Get("/provider", func(c *fiber.Ctx) error {
		return &service.ProviderError{Provider: "stripe", Op: "create checkout session", Err: errors.New("secret detail")}
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/validation", nil))
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Product ID is required", string(body))

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/provider", nil))
	require.NoError(t, err)
	body, _ = io.ReadAll(resp.Body)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, string(body), "secret detail")

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
