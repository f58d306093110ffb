package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"

	"github.com/weathercard/backend/internal/app"
	"github.com/weathercard/backend/internal/config"
	"github.com/weathercard/backend/internal/delivery/http"
	"github.com/weathercard/backend/internal/logging"
)

func main() {
	// Configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	cfg.LogStartup()

	// Lookups started over HTTP outlive their request and stop with the server
	baseCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dependency Injection
	widget, err := app.New(baseCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize application")
	}
	widget.Theme.OnChange(func(dark bool) {
		log.Info().Bool("dark", dark).Msg("theme changed")
	})

	// Fiber App
	server := fiber.New(fiber.Config{
		AppName:      "WeatherCard API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorHandler: http.ErrorHandler,
	})

	// Middleware
	server.Use(recover.New())
	server.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(server, http.NewHandler(baseCtx, widget.Search, widget.Theme, widget.Store))

	// Graceful shutdown
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := server.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")
	if err := server.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	waitForLookups(widget, cancel, 5*time.Second)
	if err := widget.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close preference store")
	}
	log.Info().Msg("server exited gracefully")
}

// waitForLookups gives background lookups until timeout to resolve, then
// cancels them
func waitForLookups(widget *app.App, cancel context.CancelFunc, timeout time.Duration) {
	done := make(chan struct{})
	go func() {
		widget.Search.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
		log.Warn().Msg("cancelling lookups still in flight")
		cancel()
		<-done
	}
}
