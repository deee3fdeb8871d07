package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
)

// ProfileRoutes sets up the authenticated profile mutations and the public
// profile view. The public view stays outside the protected group.
func ProfileRoutes(app *fiber.App, pc *controllers.ProfileController, protect fiber.Handler) {
	profile := app.Group("/api/profile")

	profile.Get("/:userId<len(24)>", pc.GetPublic)

	profile.Get("/", protect, pc.GetOwn)
	profile.Post("/", protect, pc.Update)
	profile.Put("/", protect, pc.Update)
	profile.Post("/skills", protect, pc.AddSkill)
	profile.Delete("/skills/:skill", protect, pc.RemoveSkill)
	profile.Post("/projects", protect, pc.AddProject)
	profile.Put("/projects/:id", protect, pc.UpdateProject)
	profile.Delete("/projects/:id", protect, pc.RemoveProject)
	profile.Post("/work", protect, pc.AddWork)
	profile.Post("/avatar", protect, pc.UploadAvatar)
}
