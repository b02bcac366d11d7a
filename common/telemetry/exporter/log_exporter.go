package exporter

import (
	"context"
	"fmt"

	"github.com/narender/store-manager/common/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

func NewLogExporter(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (sdklog.Exporter, error) {
	conn, err := newOTLPGrpcConnection(cfg, logger, "log")
	if err != nil {
		return nil, err
	}

	logExporter, err := otlploggrpc.New(ctx, otlploggrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP log exporter client: %w", err)
	}
	logger.Info("OTLP log exporter created")
	return logExporter, nil
}
