package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/narender/store-manager/common/config"
	"github.com/narender/store-manager/common/telemetry/exporter"
	telemetrylog "github.com/narender/store-manager/common/telemetry/log"
	telemetrymetric "github.com/narender/store-manager/common/telemetry/metric"
	"github.com/narender/store-manager/common/telemetry/propagator"
	"github.com/narender/store-manager/common/telemetry/resource"
	telemetrytrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/host"
	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
)

// ShutdownFunc flushes and stops every telemetry provider started by InitTelemetry.
type ShutdownFunc func(context.Context) error

const initTimeout = 15 * time.Second

// InitTelemetry sets up propagation and, when OTEL_ENABLED, the trace, metric
// and log pipelines exporting over OTLP gRPC together with Go runtime and host
// metrics. Providers are installed globally. The returned function shuts them
// down and is always safe to call.
func InitTelemetry(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (ShutdownFunc, error) {
	propagator.SetupPropagators()

	if !cfg.OtelEnabled {
		logger.Info("OpenTelemetry export disabled; using no-op providers.")
		return func(context.Context) error { return nil }, nil
	}

	logger.WithFields(logrus.Fields{
		"service":  cfg.ServiceName,
		"endpoint": cfg.OtelEndpoint,
		"insecure": cfg.OtelInsecure,
	}).Info("Initializing OpenTelemetry")

	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	var shutdownFuncs []ShutdownFunc
	shutdown := createMasterShutdown(&shutdownFuncs, cfg.ShutdownOtelMinTimeout, logger)

	res, err := resource.NewResource(initCtx, cfg)
	if err != nil {
		return shutdown, err
	}

	traceExporter, err := exporter.NewTraceExporter(initCtx, cfg, logger)
	if err != nil {
		return shutdown, fmt.Errorf("tracer init failed: %w", err)
	}
	tp := telemetrytrace.NewTraceProvider(cfg, res, traceExporter)
	otel.SetTracerProvider(tp)
	shutdownFuncs = append(shutdownFuncs, tp.Shutdown)

	metricExporter, err := exporter.NewMetricExporter(initCtx, cfg, logger)
	if err != nil {
		return shutdown, errors.Join(fmt.Errorf("meter init failed: %w", err), shutdown(ctx))
	}
	mp := telemetrymetric.NewMeterProvider(cfg, res, metricExporter)
	otel.SetMeterProvider(mp)
	shutdownFuncs = append(shutdownFuncs, mp.Shutdown)

	logExporter, err := exporter.NewLogExporter(initCtx, cfg, logger)
	if err != nil {
		return shutdown, errors.Join(fmt.Errorf("logger init failed: %w", err), shutdown(ctx))
	}
	lp := telemetrylog.NewLoggerProvider(cfg, res, logExporter)
	global.SetLoggerProvider(lp)
	shutdownFuncs = append(shutdownFuncs, lp.Shutdown)

	if err := runtime.Start(runtime.WithMeterProvider(mp)); err != nil {
		logger.WithError(err).Warn("Go runtime instrumentation not started")
	}
	if err := host.Start(host.WithMeterProvider(mp)); err != nil {
		logger.WithError(err).Warn("Host instrumentation not started")
	}

	logger.Info("OpenTelemetry initialization complete.")
	return shutdown, nil
}

// createMasterShutdown shuts every registered provider down concurrently, each
// bounded by perComponent on top of the caller's deadline.
func createMasterShutdown(funcs *[]ShutdownFunc, perComponent time.Duration, logger *logrus.Logger) ShutdownFunc {
	var once sync.Once
	var result error

	return func(shutdownCtx context.Context) error {
		once.Do(func() {
			var (
				wg sync.WaitGroup
				mu sync.Mutex
			)
			for _, fn := range *funcs {
				wg.Add(1)
				go func(shutdown ShutdownFunc) {
					defer wg.Done()
					ctx := shutdownCtx
					if perComponent > 0 {
						var cancel context.CancelFunc
						ctx, cancel = context.WithTimeout(shutdownCtx, perComponent)
						defer cancel()
					}
					if err := shutdown(ctx); err != nil {
						logger.WithError(err).Error("Error during OTel component shutdown")
						mu.Lock()
						result = errors.Join(result, err)
						mu.Unlock()
					}
				}(fn)
			}
			wg.Wait()

			if result != nil {
				logger.WithError(result).Warn("OpenTelemetry shutdown finished with errors")
			} else {
				logger.Info("OpenTelemetry shutdown finished.")
			}
		})
		return result
	}
}
