package main

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/handlers"
	"room-planner/internal/advisor/placement"
	"room-planner/internal/common/config"
	"room-planner/internal/common/logging"
	"room-planner/internal/common/middleware"
)

// ============================================================
// Advisor Service
// ============================================================

func main() {
	cfg := config.Load("3001")

	logger := logging.Must(cfg.LogLevel, cfg.IsProduction())
	defer logger.Sync()

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logger.Fatal("load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		}
		cat = loaded
	}
	logger.Info("catalog loaded", zap.Int("items", cat.Len()), zap.String("path", cfg.CatalogPath))

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Placement Advisor",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())

	// ============================================================
	// Health Check Routes
	// ============================================================

	app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready", "catalog": cat.Len()})
	})

	// ============================================================
	// Advisor Routes
	// ============================================================

	handlers.New(placement.NewAdvisor(cat), logger).Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting placement advisor", zap.String("addr", addr), zap.String("env", cfg.Environment))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
