package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

// ============================================================
// Logger Middleware
// ============================================================

// Logger returns the access-log middleware shared by all services.
func Logger() fiber.Handler {
	return logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} | req=${respHeader:" + RequestIDHeader + "}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	})
}
