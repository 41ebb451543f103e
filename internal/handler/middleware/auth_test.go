package middleware

import (
	"context"
	"encoding/base64"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andressep95/session-service/internal/repository/memory"
	"github.com/andressep95/session-service/internal/service"
)

func newTestApp(t *testing.T) (*fiber.App, *service.AuthService) {
	t.Helper()

	userRepo := memory.NewUserRepository()
	sessionRepo := memory.NewSessionRepository()
	authService := service.NewAuthService(
		userRepo,
		service.NewCredentialService(userRepo),
		service.NewSessionService(sessionRepo, 0),
		service.NewResetService(userRepo),
	)

	app := fiber.New()
	app.Use(SessionMiddleware(authService, "session_id", []string{"/", "/public/*"}))
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("home")
	})
	app.Get("/public/info", func(c *fiber.Ctx) error {
		return c.SendString("info")
	})
	app.Get("/private", func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)
		return c.SendString(email)
	})

	return app, authService
}

func TestSessionMiddlewareExemptPaths(t *testing.T) {
	app, _ := newTestApp(t)

	for _, path := range []string{"/", "/public/info"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode, "path %s", path)
	}
}

func TestSessionMiddlewareNoCredential(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/private", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSessionMiddlewareSessionCookie(t *testing.T) {
	app, authService := newTestApp(t)
	ctx := context.Background()

	user, err := authService.Register(ctx, "a@x.com", "pw1secret")
	require.NoError(t, err)
	sessionID, err := authService.CreateSession(ctx, user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Cookie", "session_id="+sessionID)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A dead session is forbidden, indistinguishable from never-issued
	_, err = authService.DestroySession(ctx, sessionID)
	require.NoError(t, err)

	req = httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Cookie", "session_id="+sessionID)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSessionMiddlewareBasicFallback(t *testing.T) {
	app, authService := newTestApp(t)
	ctx := context.Background()

	_, err := authService.Register(ctx, "a@x.com", "pw1secret")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("a@x.com:pw1secret")))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest("GET", "/private", nil)
	req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte("a@x.com:wrongpass")))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
