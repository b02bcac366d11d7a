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

func (r *productRepository) Update(ctx context.Context, product models.Product) (found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppProductIDKey.String(product.ID),
		attributes.AttrProductNewStockKey.Int(product.Quantity))
	mc := commonmetric.StartMetricsTimer(layer, "update_product")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	found, err := r.store.UpdateByID(ctx, productsCollection, product.ID, map[string]any{
		"name":     product.Name,
		"quantity": product.Quantity,
	})
	if err != nil {
		appErr = r.databaseError(ctx, "update_product", "Failed to write updated product data", err)
		return false, appErr
	}

	if found {
		r.logger.InfoContext(ctx, "Product updated",
			slog.String("product_id", product.ID),
			slog.String("product_name", product.Name),
			slog.Int("quantity", product.Quantity))
	}
	return found, nil
}
