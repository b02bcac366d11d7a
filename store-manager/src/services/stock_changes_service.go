package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
	"go.opentelemetry.io/otel/trace"
)

// stockChange is a signed adjustment of one product's stock.
type stockChange struct {
	productID string
	delta     int
}

// stockChanges turns replacing previous with next into per-product stock
// adjustments: products sold more lose stock, products sold less get it back.
func stockChanges(previous, next []models.SaleItem) []stockChange {
	oldTotals, oldOrder := models.QuantitiesByProduct(previous)
	newTotals, newOrder := models.QuantitiesByProduct(next)

	changes := make([]stockChange, 0, len(oldOrder)+len(newOrder))
	for _, id := range newOrder {
		if delta := oldTotals[id] - newTotals[id]; delta != 0 {
			changes = append(changes, stockChange{productID: id, delta: delta})
		}
	}
	for _, id := range oldOrder {
		if _, kept := newTotals[id]; !kept {
			changes = append(changes, stockChange{productID: id, delta: oldTotals[id]})
		}
	}
	return changes
}

// applyStockChanges applies changes one by one and returns those applied.
// A failure undoes the applied ones before returning. Returning stock to a
// product that no longer exists is skipped.
func (s *saleService) applyStockChanges(ctx context.Context, changes []stockChange) ([]stockChange, *apierrors.AppError) {
	applied := make([]stockChange, 0, len(changes))
	for _, change := range changes {
		_, appErr := s.products.AdjustStock(ctx, change.productID, change.delta)
		if appErr == nil {
			applied = append(applied, change)
			continue
		}

		if appErr.Code == apierrors.ErrCodeInvalidData {
			if change.delta > 0 {
				s.logger.WarnContext(ctx, "Product no longer exists, stock not returned",
					slog.String("product_id", change.productID),
					slog.Int("quantity", change.delta))
				continue
			}
			appErr = apierrors.NewBusinessError(apierrors.ErrCodeInvalidData, apierrors.MsgInvalidSaleItem, appErr)
		}

		s.rollback(ctx, applied)
		return nil, appErr
	}
	return applied, nil
}

// rollback reverts applied changes in reverse order. It runs even when the
// request context has been cancelled.
func (s *saleService) rollback(ctx context.Context, applied []stockChange) {
	if len(applied) == 0 {
		return
	}
	span := trace.SpanFromContext(ctx)
	ctx = context.WithoutCancel(ctx)

	for i := len(applied) - 1; i >= 0; i-- {
		change := applied[i]
		if _, appErr := s.products.AdjustStock(ctx, change.productID, -change.delta); appErr != nil {
			s.logger.ErrorContext(ctx, "Stock rollback failed",
				slog.String("product_id", change.productID),
				slog.Int("delta", -change.delta),
				slog.String("error", appErr.Error()))
			commontrace.RecordSpanError(span, appErr)
		}
	}
	s.logger.InfoContext(ctx, "Stock changes rolled back", slog.Int("changes", len(applied)))
}
