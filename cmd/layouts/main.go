package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	"room-planner/internal/advisor/catalog"
	"room-planner/internal/advisor/placement"
	"room-planner/internal/common/config"
	"room-planner/internal/common/logging"
	"room-planner/internal/common/middleware"
	"room-planner/internal/layouts/handlers"
	"room-planner/internal/layouts/repository"
	"room-planner/internal/layouts/service"
)

// ============================================================
// Layouts Service
// ============================================================

func main() {
	cfg := config.Load("3002")

	logger := logging.Must(cfg.LogLevel, cfg.IsProduction())
	defer logger.Sync()

	db, err := repository.OpenSQLite(cfg.LayoutsDB)
	if err != nil {
		logger.Fatal("open db", zap.String("path", cfg.LayoutsDB), zap.Error(err))
	}
	defer db.Close()

	repo := repository.New(db)
	if err := repo.Init(context.Background()); err != nil {
		logger.Fatal("init db", zap.Error(err))
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		if cat, err = catalog.LoadFile(cfg.CatalogPath); err != nil {
			logger.Fatal("load catalog", zap.String("path", cfg.CatalogPath), zap.Error(err))
		}
	}

	svc := service.New(repo, placement.NewAdvisor(cat), logger)

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
		AppName:      "Layouts Service",
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
		if err := db.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable", "error": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ready"})
	})

	// ============================================================
	// Layout Routes
	// ============================================================

	handlers.NewLayoutHandler(svc, logger).Register(app)

	// ============================================================
	// Server Start
	// ============================================================

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting layouts service",
		zap.String("addr", addr),
		zap.String("env", cfg.Environment),
		zap.String("db", cfg.LayoutsDB))

	if err := app.Listen(addr); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
