package config

import (
	"os"
	"strconv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	LogLevel     string

	// CatalogPath points to a YAML catalog; empty means the built-in catalog.
	CatalogPath string
	LayoutsDB   string

	AdvisorURL string
	LayoutsURL string
}

// Load reads the configuration from environment variables.
// defaultPort is used when PORT is unset so each service keeps its own port.
func Load(defaultPort string) *Config {
	return &Config{
		Port:         getEnv("PORT", defaultPort),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CatalogPath:  getEnv("CATALOG_PATH", ""),
		LayoutsDB:    getEnv("LAYOUTS_DB_PATH", "data/db/layouts.db"),
		AdvisorURL:   getEnv("ADVISOR_URL", "http://localhost:3001"),
		LayoutsURL:   getEnv("LAYOUTS_URL", "http://localhost:3002"),
	}
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
