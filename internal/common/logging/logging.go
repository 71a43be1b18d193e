// Package logging builds the zap loggers shared by the services.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a JSON production logger, or a console development logger
// when production is false. level is a zap level name such as "debug".
func New(level string, production bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	cfg := zap.NewDevelopmentConfig()
	if production {
		cfg = zap.NewProductionConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// Must is New for main packages. An unknown level falls back to info and
// the problem is logged as the first line, so a typo never silences a service.
func Must(level string, production bool) *zap.Logger {
	logger, err := New(level, production)
	if err == nil {
		return logger
	}

	fallback, ferr := New(zapcore.InfoLevel.String(), production)
	if ferr != nil {
		fallback = zap.NewExample()
	}
	fallback.Warn("invalid log level, using info", zap.String("level", level), zap.Error(err))
	return fallback
}
