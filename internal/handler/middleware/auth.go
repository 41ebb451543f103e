package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/andressep95/session-service/internal/service"
	"github.com/andressep95/session-service/pkg/pathrule"
)

// SessionMiddleware gates every request behind the path policy and
// resolves the caller's identity from the session cookie, falling back
// to a Basic authorization header. Exempt paths pass through untouched.
//
// A request with no credential at all gets 401; a presented credential
// that resolves to no user gets 403. Unknown and expired sessions are
// indistinguishable from never-issued ones.
func SessionMiddleware(authService *service.AuthService, cookieName string, exemptPaths []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !pathrule.RequiresAuth(c.Path(), exemptPaths) {
			return c.Next()
		}

		sessionID := c.Cookies(cookieName)
		authHeader := c.Get(fiber.HeaderAuthorization)

		if sessionID == "" && authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		}

		if sessionID != "" {
			user, err := authService.ResolveUserFromSession(c.Context(), sessionID)
			if err == nil {
				c.Locals("user", user)
				c.Locals("user_id", user.ID)
				c.Locals("email", user.Email)
				c.Locals("session_id", sessionID)
				return c.Next()
			}
			if !errors.Is(err, service.ErrInvalidSession) {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "failed to resolve session",
				})
			}
		}

		if authHeader != "" {
			user, err := authService.VerifyBasicHeader(c.Context(), authHeader)
			if err == nil {
				c.Locals("user", user)
				c.Locals("user_id", user.ID)
				c.Locals("email", user.Email)
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "forbidden",
		})
	}
}
