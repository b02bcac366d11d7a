package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (r *saleRepository) Delete(ctx context.Context, id string) (found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "delete_sale")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	found, err := r.store.DeleteByID(ctx, salesCollection, id)
	if err != nil {
		appErr = r.databaseError(ctx, "delete_sale", "Failed to delete sale data", err)
		return false, appErr
	}

	if found {
		r.logger.InfoContext(ctx, "Sale deleted", slog.String("sale_id", id))
	}
	return found, nil
}
