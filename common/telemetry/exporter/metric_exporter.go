package exporter

import (
	"context"
	"fmt"

	"github.com/narender/store-manager/common/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func NewMetricExporter(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (sdkmetric.Exporter, error) {
	conn, err := newOTLPGrpcConnection(cfg, logger, "metric")
	if err != nil {
		return nil, err
	}

	metricExporter, err := otlpmetricgrpc.New(ctx,
		otlpmetricgrpc.WithGRPCConn(conn),
		otlpmetricgrpc.WithTemporalitySelector(deltaForCountersAndHistograms),
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to create OTLP metric exporter client: %w", err)
	}
	logger.Info("OTLP metric exporter created")
	return metricExporter, nil
}

func deltaForCountersAndHistograms(kind sdkmetric.InstrumentKind) metricdata.Temporality {
	if kind == sdkmetric.InstrumentKindCounter || kind == sdkmetric.InstrumentKindHistogram {
		return metricdata.DeltaTemporality
	}
	return metricdata.CumulativeTemporality
}
