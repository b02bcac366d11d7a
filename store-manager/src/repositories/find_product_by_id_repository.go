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

func (r *productRepository) FindByID(ctx context.Context, id string) (product models.Product, found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "find_product_by_id")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	r.logger.DebugContext(ctx, "Looking up product", slog.String("product_id", id))

	found, err := r.store.FindByID(ctx, productsCollection, id, &product)
	if err != nil {
		appErr = r.databaseError(ctx, "find_product_by_id", "Failed to read product data from database", err)
		return models.Product{}, false, appErr
	}
	return product, found, nil
}
