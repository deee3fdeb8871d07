package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
)

// AuthRoutes sets up registration, login and the authenticated account
// endpoints.
func AuthRoutes(app *fiber.App, ac *controllers.AuthController, protect fiber.Handler) {
	auth := app.Group("/api/auth")

	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)
	auth.Get("/me", protect, ac.Me)
	auth.Post("/deactivate", protect, ac.Deactivate)
}
