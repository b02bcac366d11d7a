package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/narender/store-manager/common/config"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

// New builds the application logger. Production sends records through the
// OTel log pipeline; every other environment writes JSON to stdout.
func New(cfg *config.Config) *slog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg *config.Config, out io.Writer) *slog.Logger {
	level := ParseLevel(cfg.LogLevel)

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = otelslog.NewHandler(cfg.ServiceName)
	} else {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			AddSource: true,
			Level:     level,
		})
	}

	return slog.New(handler).With(slog.String("service", cfg.ServiceName))
}

// Init builds the application logger and installs it as the slog default.
func Init(cfg *config.Config) *slog.Logger {
	l := New(cfg)
	slog.SetDefault(l)
	l.Info("Logger initialized", slog.String("environment", cfg.Environment), slog.String("level", ParseLevel(cfg.LogLevel).String()))
	return l
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
