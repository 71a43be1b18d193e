package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"room-planner/internal/common/config"
	"room-planner/internal/common/logging"
	"room-planner/internal/common/middleware"
	"room-planner/internal/gateway/handlers"
	"room-planner/internal/gateway/proxy"
)

// ============================================================
// API Gateway
// ============================================================

func main() {
	cfg := config.Load("3000")

	logger := logging.Must(cfg.LogLevel, cfg.IsProduction())
	defer logger.Sync()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Room Planner Gateway",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.CORS())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", handlers.LivenessProbe)
	app.Get("/health/ready", handlers.ReadinessProbe(nil,
		handlers.Upstream{Name: "advisor", URL: cfg.AdvisorURL},
		handlers.Upstream{Name: "layouts", URL: cfg.LayoutsURL},
	))
	app.Get("/health/startup", handlers.StartupProbe)

	// ============================================================
	// Docs
	// ============================================================

	app.Get("/docs/openapi.yaml", handlers.SwaggerSpec)
	app.Get("/docs", handlers.SwaggerUI)

	// ============================================================
	// API Routes
	// ============================================================

	const prefix = "/api/v1"
	api := app.Group(prefix)

	api.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Room Planner API v1",
			"status":  "ok",
		})
	})

	proxy.New(nil, logger).Register(api, prefix, cfg.AdvisorURL, cfg.LayoutsURL)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting gateway",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.String("advisor", cfg.AdvisorURL),
		zap.String("layouts", cfg.LayoutsURL))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
