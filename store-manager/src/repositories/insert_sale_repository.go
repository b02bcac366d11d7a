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

func (r *saleRepository) Insert(ctx context.Context, items []models.SaleItem) (sale models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleItemCount.Int(len(items)))
	mc := commonmetric.StartMetricsTimer(layer, "insert_sale")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	sale = models.Sale{ItemsSold: items}
	id, err := r.store.Insert(ctx, salesCollection, sale)
	if err != nil {
		appErr = r.databaseError(ctx, "insert_sale", "Failed to write sale data", err)
		return models.Sale{}, appErr
	}
	sale.ID = id

	span.SetAttributes(attributes.AttrAppSaleIDKey.String(id))
	r.logger.InfoContext(ctx, "Sale stored", slog.String("sale_id", id), slog.Int("items", len(items)))
	return sale, nil
}
