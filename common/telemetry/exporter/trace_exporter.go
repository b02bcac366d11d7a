package exporter

import (
	"context"
	"fmt"

	"github.com/narender/store-manager/common/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func NewTraceExporter(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (sdktrace.SpanExporter, error) {
	conn, err := newOTLPGrpcConnection(cfg, logger, "trace")
	if err != nil {
		return nil, err
	}

	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP trace exporter client: %w", err)
	}
	logger.Info("OTLP trace exporter created")
	return traceExporter, nil
}
