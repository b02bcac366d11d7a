package http

import (
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/narender/store-manager/common/http/middleware"
	"github.com/sirupsen/logrus"
)

// MiddlewareConfig holds configuration for middleware
type MiddlewareConfig struct {
	Logger          *logrus.Logger
	EnableOTel      bool
	EnableRequestID bool
	EnableLogger    bool
	EnableCORS      bool
	EnableRecovery  bool
	LoggingConfig   middleware.LoggingConfig
	CORSConfig      cors.Config
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		Logger:          logrus.StandardLogger(),
		EnableOTel:      true,
		EnableRequestID: true,
		EnableLogger:    true,
		EnableCORS:      true,
		EnableRecovery:  true,
		LoggingConfig:   middleware.DefaultLoggingConfig(),
		CORSConfig:      cors.Config{ExposeHeaders: middleware.HeaderRequestID},
	}
}

// RegisterMiddleware registers the common chain, outermost first:
// tracing, request id, access log, panic recovery, CORS.
func RegisterMiddleware(app *fiber.App, config ...MiddlewareConfig) {
	cfg := DefaultMiddlewareConfig()
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	if cfg.EnableOTel {
		app.Use(otelfiber.Middleware())
	}

	if cfg.EnableRequestID {
		app.Use(middleware.RequestID())
	}

	if cfg.EnableLogger {
		cfg.LoggingConfig.Logger = cfg.Logger
		app.Use(middleware.Logger(cfg.LoggingConfig))
	}

	if cfg.EnableRecovery {
		app.Use(middleware.Recovery(cfg.Logger))
	}

	if cfg.EnableCORS {
		app.Use(cors.New(cfg.CORSConfig))
	}
}
