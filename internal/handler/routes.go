package handler

import (
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(
	app *fiber.App,
	authHandler *AuthHandler,
	passwordHandler *PasswordHandler,
	healthHandler *HealthHandler,
	sessionMiddleware fiber.Handler,
) {
	// The session gate runs on every request; exempt paths are decided
	// by the path policy inside it.
	app.Use(sessionMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "welcome"})
	})

	// Health checks (public)
	app.Get("/health", healthHandler.Health)
	app.Get("/ready", healthHandler.Ready)

	// API v1
	api := app.Group("/api/v1")

	// Auth routes (public except logout, which needs a live session)
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/forgot-password", passwordHandler.ForgotPassword)
	auth.Post("/reset-password", passwordHandler.ResetPassword)

	// User routes (protected)
	users := api.Group("/users")
	users.Get("/me", authHandler.Me)
}
