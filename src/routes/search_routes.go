package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
)

// SearchRoutes sets up the public search and aggregation endpoints.
func SearchRoutes(app *fiber.App, sc *controllers.SearchController) {
	search := app.Group("/api/search")

	search.Get("/", sc.Search)
	search.Get("/suggestions", sc.Suggestions)
	search.Get("/advanced", sc.Advanced)
	search.Get("/trending-skills", sc.TrendingSkills)
}
