package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/andressep95/session-service/internal/domain"
	"github.com/andressep95/session-service/internal/service"
	"github.com/andressep95/session-service/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *validator.Validator
	cookieName  string
}

type RegisterRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

func NewAuthHandler(authService *service.AuthService, validator *validator.Validator, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
		cookieName:  cookieName,
	}
}

// Register handles user registration
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.authService.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return badRequest(c, "email already registered")
		}
		return internalError(c, "failed to register user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"email":   user.Email,
		"message": "user created",
	})
}

// Login validates credentials and opens a session, handed back as a
// cookie.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	user, err := h.authService.VerifyCredentials(c.Context(), req.Email, req.Password)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid credentials",
		})
	}

	sessionID, err := h.authService.CreateSession(c.Context(), user.ID)
	if err != nil {
		return internalError(c, "failed to create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    sessionID,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"email":   user.Email,
		"message": "logged in",
	})
}

// Logout destroys the session named by the cookie and clears it
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sessionID := c.Cookies(h.cookieName)
	if sessionID == "" {
		return forbidden(c)
	}

	existed, err := h.authService.DestroySession(c.Context(), sessionID)
	if err != nil {
		return internalError(c, "failed to destroy session")
	}
	if !existed {
		return forbidden(c)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{
		"message": "logged out",
	})
}

// Me returns the authenticated user's profile
// GET /api/v1/users/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(*domain.User)
	if !ok {
		return forbidden(c)
	}

	return c.JSON(fiber.Map{
		"email": user.Email,
	})
}
