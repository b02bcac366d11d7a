package metric

import (
	"time"

	"github.com/narender/store-manager/common/config"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
)

const exportInterval = 15 * time.Second

func NewMeterProvider(cfg *config.Config, res *resource.Resource, exporter sdkmetric.Exporter) *sdkmetric.MeterProvider {
	readerOpts := []sdkmetric.PeriodicReaderOption{sdkmetric.WithInterval(exportInterval)}
	if cfg.OtelBatchTimeout > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithTimeout(cfg.OtelBatchTimeout))
	}

	return sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
	)
}
