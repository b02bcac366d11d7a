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

func (r *saleRepository) Update(ctx context.Context, sale models.Sale) (found bool, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppSaleIDKey.String(sale.ID),
		attributes.AttrAppSaleItemCount.Int(len(sale.ItemsSold)))
	mc := commonmetric.StartMetricsTimer(layer, "update_sale")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	found, err := r.store.UpdateByID(ctx, salesCollection, sale.ID, map[string]any{
		"itensSold": sale.ItemsSold,
	})
	if err != nil {
		appErr = r.databaseError(ctx, "update_sale", "Failed to write updated sale data", err)
		return false, appErr
	}

	if found {
		r.logger.InfoContext(ctx, "Sale updated", slog.String("sale_id", sale.ID), slog.Int("items", len(sale.ItemsSold)))
	}
	return found, nil
}
