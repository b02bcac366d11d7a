package metric

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
)

const (
	productStock = "product.stock"
	salesCreated = "sales.created"
	itemsSold    = "sales.items.sold"
)

var (
	stockGauge     otelmetric.Int64Gauge
	salesCounter   otelmetric.Int64Counter
	itemsSoldTotal otelmetric.Int64Counter
)

func initProductMetrics() {
	var err error

	stockGauge, err = meter.Int64Gauge(
		productStock,
		otelmetric.WithDescription("Current number of units in stock per product"),
		otelmetric.WithUnit("{item}"),
	)
	if err != nil {
		slog.Error("Failed to create product.stock gauge", slog.Any("error", err))
	}

	salesCounter, err = meter.Int64Counter(
		salesCreated,
		otelmetric.WithDescription("Number of sales registered"),
		otelmetric.WithUnit("{sale}"),
	)
	if err != nil {
		slog.Error("Failed to create sales.created counter", slog.Any("error", err))
	}

	itemsSoldTotal, err = meter.Int64Counter(
		itemsSold,
		otelmetric.WithDescription("Units of product sold across all sales"),
		otelmetric.WithUnit("{item}"),
	)
	if err != nil {
		slog.Error("Failed to create sales.items.sold counter", slog.Any("error", err))
	}
}

// RecordProductStock publishes the latest known stock level of a product.
func RecordProductStock(ctx context.Context, productID string, quantity int) {
	if stockGauge == nil {
		return
	}
	stockGauge.Record(ctx, int64(quantity), otelmetric.WithAttributes(attribute.String("app.product.id", productID)))
}

// RecordSaleCreated counts one registered sale carrying units items in total.
func RecordSaleCreated(ctx context.Context, units int) {
	if salesCounter != nil {
		salesCounter.Add(ctx, 1)
	}
	if itemsSoldTotal != nil {
		itemsSoldTotal.Add(ctx, int64(units))
	}
}
