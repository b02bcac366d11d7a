package log

import (
	"github.com/narender/store-manager/common/config"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
)

func NewLoggerProvider(cfg *config.Config, res *resource.Resource, exporter sdklog.Exporter) *sdklog.LoggerProvider {
	var processorOpts []sdklog.BatchProcessorOption
	if cfg.OtelBatchTimeout > 0 {
		processorOpts = append(processorOpts, sdklog.WithExportTimeout(cfg.OtelBatchTimeout))
	}

	return sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter, processorOpts...)),
	)
}
