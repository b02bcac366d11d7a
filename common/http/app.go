package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/narender/store-manager/common/config"
	"github.com/narender/store-manager/common/http/middleware"
	"github.com/sirupsen/logrus"
)

// Request bodies are a product or a list of sale lines; 1MB is generous.
const maxBodyBytes = 1 << 20

// Timeouts bound a single connection of the API server.
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

// ServerOptions configures the Fiber app that serves /products and /sales.
type ServerOptions struct {
	Name       string
	AccessLog  *logrus.Logger
	Timeouts   Timeouts
	Middleware MiddlewareConfig
}

// DefaultServerOptions logs to the logrus standard logger with tracing on.
func DefaultServerOptions() ServerOptions {
	return ServerOptions{
		Name:       "store-manager",
		AccessLog:  logrus.StandardLogger(),
		Timeouts:   Timeouts{Read: time.Minute, Write: time.Minute, Idle: 2 * time.Minute},
		Middleware: DefaultMiddlewareConfig(),
	}
}

// ServerOptionsFor names the app after the service and enables otelfiber only
// when telemetry export is configured.
func ServerOptionsFor(cfg *config.Config, accessLog *logrus.Logger) ServerOptions {
	opts := DefaultServerOptions()
	opts.Name = cfg.ServiceName
	opts.AccessLog = accessLog
	opts.Middleware.EnableOTel = cfg.OtelEnabled
	return opts
}

// NewApp creates a Fiber app that renders every error as an {"err": {...}}
// body and runs the common middleware chain. The startup banner is off; the
// lifecycle logger reports the listen address instead.
func NewApp(opts ServerOptions) *fiber.App {
	if opts.AccessLog == nil {
		opts.AccessLog = logrus.StandardLogger()
	}

	app := fiber.New(fiber.Config{
		AppName:               opts.Name,
		ReadTimeout:           opts.Timeouts.Read,
		WriteTimeout:          opts.Timeouts.Write,
		IdleTimeout:           opts.Timeouts.Idle,
		BodyLimit:             maxBodyBytes,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(opts.AccessLog),
	})

	opts.Middleware.Logger = opts.AccessLog
	RegisterMiddleware(app, opts.Middleware)
	return app
}
