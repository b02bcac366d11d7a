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

func (r *saleRepository) FindByID(ctx context.Context, id string) (sale models.Sale, found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "find_sale_by_id")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	r.logger.DebugContext(ctx, "Looking up sale", slog.String("sale_id", id))

	found, err := r.store.FindByID(ctx, salesCollection, id, &sale)
	if err != nil {
		appErr = r.databaseError(ctx, "find_sale_by_id", "Failed to read sale data from database", err)
		return models.Sale{}, false, appErr
	}
	if found {
		span.SetAttributes(attributes.AttrAppSaleItemCount.Int(len(sale.ItemsSold)))
	}
	return sale, found, nil
}
