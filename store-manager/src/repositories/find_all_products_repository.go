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

func (r *productRepository) FindAll(ctx context.Context) (products []models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx)
	mc := commonmetric.StartMetricsTimer(layer, "find_all_products")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return nil, appErr
	}

	products = []models.Product{}
	if err := r.store.FindAll(ctx, productsCollection, &products); err != nil {
		appErr = r.databaseError(ctx, "find_all_products", "Failed to read product data from database", err)
		return nil, appErr
	}

	span.SetAttributes(attributes.AttrAppProductCount.Int(len(products)))
	r.logger.DebugContext(ctx, "Products loaded", slog.Int("count", len(products)))
	return products, nil
}
