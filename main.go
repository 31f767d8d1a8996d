package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	"github.com/SangWon7242/next-board/config"
	_ "github.com/SangWon7242/next-board/docs"
	"github.com/SangWon7242/next-board/handlers"
	"github.com/SangWon7242/next-board/internal/board"
	"github.com/SangWon7242/next-board/internal/gateway"
	"github.com/SangWon7242/next-board/internal/views"
	"github.com/SangWon7242/next-board/middleware"
)

// @title next-board API
// @version 1.0
// @description Community board backend: posts with markdown bodies and image thumbnails, backed by Supabase.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg)

	supaClient, err := config.NewSupabase(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize Supabase: %v", err)
	}

	supaGateway := gateway.NewSupabase(supaClient, gateway.DefaultTimeout)
	viewCache, err := views.NewCache(500)
	if err != nil {
		logger.Fatalf("Failed to create view cache: %v", err)
	}

	boardSvc := board.NewService(supaGateway, supaGateway, viewCache, logger)
	handler := handlers.NewApplicationHandler(boardSvc, supaGateway, supaClient.Auth, viewCache, logger)

	app := fiber.New(fiber.Config{
		// Thumbnails may be up to 5MB; leave headroom for the rest of the form.
		BodyLimit: 10 << 20,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(logger))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "next-board API is healthy",
		})
	})

	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	apiV1 := app.Group("/api/v1")

	apiV1.Post("/posts", handler.CreatePost)
	apiV1.Get("/posts", handler.ListPosts)
	apiV1.Get("/posts/:id", handler.GetPost)
	apiV1.Patch("/posts/:id", handler.UpdatePost)
	apiV1.Delete("/posts/:id", handler.DeletePost)

	apiV1.Post("/auth/signup", handler.SignUp)
	apiV1.Get("/users/:email", handler.GetUserByEmail)

	apiV1.Get("/todos", handler.ListTodos)

	logger.Infof("Starting next-board API on port %s...", cfg.Port)
	logger.Fatal(app.Listen(":" + cfg.Port))
}
