package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (r *productRepository) Delete(ctx context.Context, id string) (found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "delete_product")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	found, err := r.store.DeleteByID(ctx, productsCollection, id)
	if err != nil {
		appErr = r.databaseError(ctx, "delete_product", "Failed to delete product data", err)
		return false, appErr
	}

	if found {
		r.logger.InfoContext(ctx, "Product deleted", slog.String("product_id", id))
	}
	return found, nil
}
