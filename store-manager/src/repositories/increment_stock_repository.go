package repositories

import (
	"context"
	"errors"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/docstore"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
)

func (r *productRepository) IncrementStock(ctx context.Context, id string, delta int) (quantity int, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppProductIDKey.String(id),
		attributes.AttrStockDeltaKey.Int(delta))
	mc := commonmetric.StartMetricsTimer(layer, "increment_stock")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if appErr = r.simulator.Simulate(ctx); appErr != nil {
		return
	}

	quantity, err := r.store.Increment(ctx, productsCollection, id, "quantity", delta)
	switch {
	case errors.Is(err, docstore.ErrNotFound):
		r.logger.WarnContext(ctx, "Stock adjustment for unknown product", slog.String("product_id", id))
		return 0, apierrors.NewBusinessError(apierrors.ErrCodeInvalidData, apierrors.MsgWrongProductID, err)
	case errors.Is(err, docstore.ErrBelowZero):
		r.logger.WarnContext(ctx, "Stock adjustment blocked - insufficient stock",
			slog.String("product_id", id),
			slog.Int("delta", delta))
		return 0, apierrors.NewBusinessError(apierrors.ErrCodeStockProblem, apierrors.MsgInsufficientStock, err)
	case err != nil:
		appErr = r.databaseError(ctx, "increment_stock", "Failed to write updated product data", err)
		return 0, appErr
	}

	span.SetAttributes(attributes.AttrProductNewStockKey.Int(quantity))
	r.logger.InfoContext(ctx, "Product stock adjusted",
		slog.String("product_id", id),
		slog.Int("delta", delta),
		slog.Int("new_stock", quantity))
	return quantity, nil
}
