package logging

import (
	"os"
	"strings"
	"time"

	"github.com/narender/store-manager/common/config"
	"github.com/sirupsen/logrus"
)

// SetupLogrus configures the bootstrap and access logger and mirrors its
// settings onto the logrus standard logger.
func SetupLogrus(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', defaulting to 'info': %v", cfg.LogLevel, err)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339Nano,
		})
	}
	logger.SetOutput(os.Stderr)

	if cfg.OtelEnabled {
		logger.AddHook(NewOtelHook())
	}

	logrus.SetLevel(logger.GetLevel())
	logrus.SetFormatter(logger.Formatter)
	logrus.SetOutput(logger.Out)

	logger.Infof("Logrus initialized with level '%s' and format '%s'.", logger.GetLevel(), cfg.LogFormat)
	return logger
}
