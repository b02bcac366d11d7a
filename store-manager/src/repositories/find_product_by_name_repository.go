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

func (r *productRepository) FindByName(ctx context.Context, name string) (product models.Product, found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductNameKey.String(name))
	mc := commonmetric.StartMetricsTimer(layer, "find_product_by_name")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	r.logger.DebugContext(ctx, "Looking up product by name", slog.String("product_name", name))

	found, err := r.store.FindOne(ctx, productsCollection, "name", name, &product)
	if err != nil {
		appErr = r.databaseError(ctx, "find_product_by_name", "Failed to read product data from database", err)
		return models.Product{}, false, appErr
	}
	return product, found, nil
}
