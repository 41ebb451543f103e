package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/andressep95/session-service/internal/service"
	"github.com/andressep95/session-service/pkg/email"
	"github.com/andressep95/session-service/pkg/validator"
)

type PasswordHandler struct {
	authService  *service.AuthService
	emailService email.Service
	validator    *validator.Validator
	emailEnabled bool
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	ResetToken  string `json:"reset_token" form:"reset_token" validate:"required"`
	NewPassword string `json:"new_password" form:"new_password" validate:"required,min=8"`
}

func NewPasswordHandler(
	authService *service.AuthService,
	emailService email.Service,
	validator *validator.Validator,
	emailEnabled bool,
) *PasswordHandler {
	return &PasswordHandler{
		authService:  authService,
		emailService: emailService,
		validator:    validator,
		emailEnabled: emailEnabled,
	}
}

// ForgotPassword issues a password reset token and mails it to the user.
// When email delivery is disabled the token is echoed in the response
// instead, for local development.
// POST /api/v1/auth/forgot-password
func (h *PasswordHandler) ForgotPassword(c *fiber.Ctx) error {
	var req ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	resetToken, err := h.authService.IssueResetToken(c.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return forbidden(c)
		}
		return internalError(c, "failed to issue reset token")
	}

	if err := h.emailService.SendPasswordResetEmail(c.Context(), req.Email, resetToken); err != nil {
		// Token is already stored; the user can retry delivery.
		log.Printf("[PASSWORD_HANDLER] Reset email delivery failed for %s: %v", req.Email, err)
	}

	resp := fiber.Map{
		"email":   req.Email,
		"message": "reset token issued",
	}
	if !h.emailEnabled {
		resp["reset_token"] = resetToken
	}

	return c.JSON(resp)
}

// ResetPassword consumes a reset token and sets the new password
// POST /api/v1/auth/reset-password
func (h *PasswordHandler) ResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.validator.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.authService.ConsumePasswordReset(c.Context(), req.ResetToken, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) {
			return forbidden(c)
		}
		return internalError(c, "failed to update password")
	}

	if err := h.emailService.SendPasswordChangedEmail(c.Context(), req.Email); err != nil {
		log.Printf("[PASSWORD_HANDLER] Password changed notification failed for %s: %v", req.Email, err)
	}

	return c.JSON(fiber.Map{
		"email":   req.Email,
		"message": "password updated",
	})
}
