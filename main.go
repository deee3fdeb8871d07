package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/devfolio/Backend-Dev-Folio/src/cache"
	"github.com/devfolio/Backend-Dev-Folio/src/config"
	"github.com/devfolio/Backend-Dev-Folio/src/controllers"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
	"github.com/devfolio/Backend-Dev-Folio/src/middleware"
	"github.com/devfolio/Backend-Dev-Folio/src/routes"
)

func main() {
	cfg := config.Load()

	client, db, err := lib.ConnectDB(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 15*time.Second)
	if err := lib.EnsureIndexes(indexCtx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	cancelIndex()

	redis := cache.NewRedis(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword, cfg.CacheTTL)
	sentry := lib.NewSentryService(cfg.SentryDSN, cfg.Environment)

	app := fiber.New(fiber.Config{
		AppName:      "dev-folio",
		ErrorHandler: middleware.ErrorHandler(sentry, cfg.IsProduction()),
	})

	app.Use(fiberrecover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	if cfg.RateLimitEnabled {
		app.Use(middleware.RateLimiter(cfg.RateLimitMax))
	}

	healthController := controllers.NewHealthController(client, redis)
	app.Use(healthController.CountRequests)

	authController := controllers.NewAuthController(db, cfg)
	profileController := controllers.NewProfileController(db, redis, cfg.UploadDir)
	searchController := controllers.NewSearchController(db, redis)
	skillController := controllers.NewSkillController(db, redis)
	projectController := controllers.NewProjectController(db, redis)

	protect := middleware.Protect(db.Collection("users"), cfg.JWTSecret)

	routes.AuthRoutes(app, authController, protect)
	routes.ProfileRoutes(app, profileController, protect)
	routes.SearchRoutes(app, searchController)
	routes.SkillRoutes(app, skillController)
	routes.ProjectRoutes(app, projectController)
	routes.HealthRoutes(app, healthController)

	app.Static("/uploads", cfg.UploadDir)

	go func() {
		log.Printf("Server is running on port %s", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Mongo disconnect error: %v", err)
	}
	if err := redis.Close(); err != nil {
		log.Printf("Redis close error: %v", err)
	}
	sentry.Close()

	log.Println("Shutdown complete")
}
