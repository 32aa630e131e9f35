package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	gqlschema "github.com/latso/latso-backend/graphql"
	"github.com/latso/latso-backend/restapi"
	"github.com/latso/latso-backend/store"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(s store.Store) *fiber.App {
	schema, err := gqlschema.CreateSchema(s)
	if err != nil {
		log.Fatalf("Failed to create GraphQL schema: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "LATSO Demo API v1.0",
		ReadTimeout: 60 * time.Second,
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	// Demo frontend runs anywhere, so CORS stays wide open
	app.Use(cors.New())
	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "LATSO Demo API is running!",
			"status":  "healthy",
		})
	})

	// Setup REST and GraphQL routes
	restapi.SetupRoutes(app, s, schema)

	return app
}
