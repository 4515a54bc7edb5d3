package main

import (
	"log"

	"retail-intelligence/config"
	"retail-intelligence/logger"
	"retail-intelligence/middleware"
	"retail-intelligence/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Unable to load configuration: %v", err)
	}
	config.AppConfig = cfg

	zl, err := logger.New(cfg.Environment)
	if err != nil {
		log.Fatalf("Unable to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	app := fiber.New(fiber.Config{
		AppName:               cfg.ServiceName,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger(zl))

	// Setup routes
	routes.SetupRoutes(app)

	zl.Info("serving", zap.String("addr", cfg.HTTPAddr), zap.String("env", cfg.Environment))
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
