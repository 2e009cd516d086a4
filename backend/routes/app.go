package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"courtside/backend/config"
	"courtside/backend/middleware"
)

// NewApp creates the Fiber app with the global middleware stack.
func NewApp(cfg *config.Config, logger *log.Logger) *fiber.App {
	bodyLimit := cfg.MaxUploadMB * 1024 * 1024
	if bodyLimit <= 0 {
		bodyLimit = fiber.DefaultBodyLimit
	}

	app := fiber.New(fiber.Config{
		AppName:   "courtside",
		BodyLimit: bodyLimit,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.CORSOrigin,
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "X-Conversation-Id",
	}))
	app.Use(middleware.LoggingMiddleware(logger, cfg.LogFormat != "json"))

	return app
}
