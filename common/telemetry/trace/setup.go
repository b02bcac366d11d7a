package trace

import (
	"github.com/narender/store-manager/common/config"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// NewSampler samples root spans by the configured ratio and follows the parent otherwise.
func NewSampler(cfg *config.Config) sdktrace.Sampler {
	switch {
	case cfg.OtelSampleRatio >= 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	case cfg.OtelSampleRatio <= 0:
		return sdktrace.ParentBased(sdktrace.NeverSample())
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.OtelSampleRatio))
	}
}

func NewTraceProvider(cfg *config.Config, res *resource.Resource, exporter sdktrace.SpanExporter) *sdktrace.TracerProvider {
	var bspOpts []sdktrace.BatchSpanProcessorOption
	if cfg.OtelBatchTimeout > 0 {
		bspOpts = append(bspOpts, sdktrace.WithBatchTimeout(cfg.OtelBatchTimeout))
	}

	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(NewSampler(cfg)),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(sdktrace.NewBatchSpanProcessor(exporter, bspOpts...)),
	)
}
