package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

func (r *productRepository) Insert(ctx context.Context, name string, quantity int) (product models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppProductNameKey.String(name),
		attributes.AttrProductNewStockKey.Int(quantity))
	mc := commonmetric.StartMetricsTimer(layer, "insert_product")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	product = models.Product{Name: name, Quantity: quantity}
	id, err := r.store.Insert(ctx, productsCollection, product)
	if err != nil {
		appErr = r.databaseError(ctx, "insert_product", "Failed to write product data", err)
		return models.Product{}, appErr
	}
	product.ID = id

	span.SetAttributes(attributes.AttrAppProductIDKey.String(id))
	r.logger.InfoContext(ctx, "Product stored",
		slog.String("product_id", id),
		slog.String("product_name", name),
		slog.Int("quantity", quantity))
	return product, nil
}
