package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/theleywin/Backend-Dev-Connect/src/controllers"
)

// AuthRoutes sets up routes for registration, login, and the current account
func AuthRoutes(app *fiber.App, ac *controllers.AuthController, protect fiber.Handler) {
	app.Post("/api/users", ac.Register)

	auth := app.Group("/api/auth")
	auth.Post("/", ac.Login)
	auth.Get("/", protect, ac.GetCurrentUser)
}
