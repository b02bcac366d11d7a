package repositories

import (
	"context"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

func (r *saleRepository) FindAll(ctx context.Context) (sales []models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx)
	mc := commonmetric.StartMetricsTimer(layer, "find_all_sales")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return nil, appErr
	}

	sales = []models.Sale{}
	if err := r.store.FindAll(ctx, salesCollection, &sales); err != nil {
		appErr = r.databaseError(ctx, "find_all_sales", "Failed to read sale data from database", err)
		return nil, appErr
	}

	span.SetAttributes(attributes.AttrAppSalesCount.Int(len(sales)))
	return sales, nil
}
