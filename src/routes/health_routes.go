package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
)

// HealthRoutes sets up the liveness/readiness probes.
func HealthRoutes(app *fiber.App, hc *controllers.HealthController) {
	health := app.Group("/health")

	health.Get("/", hc.Health)
	health.Get("/detailed", hc.Detailed)
	health.Get("/ready", hc.Ready)
	health.Get("/live", hc.Live)
	health.Get("/metrics", hc.Metrics)
}
