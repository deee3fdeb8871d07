package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
)

// SkillRoutes sets up the public skill browsing endpoints.
func SkillRoutes(app *fiber.App, sk *controllers.SkillController) {
	skills := app.Group("/api/skills")

	skills.Get("/", sk.List)
	skills.Get("/top", sk.Top)
	skills.Get("/categories", sk.Categories)
	skills.Get("/search/:q", sk.SearchSkills)
	skills.Get("/:name", sk.GetByName)
}
