package main

import (
	"github.com/osse101/hypernum/internal/config"
	"github.com/osse101/hypernum/internal/logger"
)

// initLogger configures the default slog logger. Source locations are only
// recorded in development.
func initLogger(cfg *config.Config) {
	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		logger.SourceEnabled(cfg.Environment),
	)

	logger.InitLogger(loggerConfig)
}
