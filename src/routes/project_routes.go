package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
)

// ProjectRoutes sets up the public project browsing endpoints.
func ProjectRoutes(app *fiber.App, pj *controllers.ProjectController) {
	projects := app.Group("/api/projects")

	projects.Get("/", pj.List)
	projects.Get("/technologies", pj.Technologies)
	projects.Get("/:userId", pj.ByUser)
}
