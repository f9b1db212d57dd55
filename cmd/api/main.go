package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"catalog-service/interfaces/api/middleware"
	"catalog-service/interfaces/api/routes"
	"catalog-service/pkg/di"
	"catalog-service/pkg/logger"
)

func main() {
	container, err := di.NewContainer()
	if err != nil {
		logger.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Cleanup()

	app := fiber.New(fiber.Config{
		AppName:      container.Config.App.Name,
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(middleware.CORS())

	routes.SetupRoutes(app, container.Handlers)

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		logger.Info("Shutting down server...")
		if err := app.Shutdown(); err != nil {
			logger.Error("Server shutdown failed", "error", err)
		}
	}()

	addr := ":" + container.Config.App.Port
	logger.Info("Starting server", "addr", addr, "env", container.Config.App.Env)
	if err := app.Listen(addr); err != nil {
		logger.Error("Server stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited")
}
