package services

import (
	"context"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

// AdjustStock fails with invalid_data for unknown products and stock_problem
// when the result would be negative.
func (s *productService) AdjustStock(ctx context.Context, id string, delta int) (quantity int, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppProductIDKey.String(id),
		attributes.AttrStockDeltaKey.Int(delta))
	mc := commonmetric.StartMetricsTimer(layer, "adjust_stock")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	quantity, appErr = s.repo.IncrementStock(ctx, id, delta)
	if appErr != nil {
		return 0, appErr
	}

	commonmetric.RecordProductStock(ctx, id, quantity)
	return quantity, nil
}
