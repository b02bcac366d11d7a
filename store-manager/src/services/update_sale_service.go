package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/apirequests"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

// Update replaces the lines of a sale and moves stock by the per-product
// difference between the old and new lines.
func (s *saleService) Update(ctx context.Context, id string, items []apirequests.SaleItemRequest) (sale models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx,
		attributes.AttrAppSaleIDKey.String(id),
		attributes.AttrAppSaleItemCount.Int(len(items)))
	mc := commonmetric.StartMetricsTimer(layer, "update_sale")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	existing, appErr := s.FindByID(ctx, id)
	if appErr != nil {
		return models.Sale{}, appErr
	}

	lines, products, appErr := s.validateSale(ctx, items)
	if appErr != nil {
		return models.Sale{}, appErr
	}
	held, _ := models.QuantitiesByProduct(existing.ItemsSold)
	if appErr = checkStock(lines, products, held); appErr != nil {
		s.logger.WarnContext(ctx, "Sale update blocked - insufficient stock", slog.String("sale_id", id))
		return models.Sale{}, appErr
	}

	applied, appErr := s.applyStockChanges(ctx, stockChanges(existing.ItemsSold, lines))
	if appErr != nil {
		return models.Sale{}, appErr
	}

	sale = models.Sale{ID: id, ItemsSold: lines}
	found, appErr := s.repo.Update(ctx, sale)
	if appErr == nil && !found {
		appErr = apierrors.NewBusinessError(apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound, nil)
	}
	if appErr != nil {
		s.rollback(ctx, applied)
		return models.Sale{}, appErr
	}

	s.logger.InfoContext(ctx, "Sale updated", slog.String("sale_id", id), slog.Int("stock_changes", len(applied)))
	return sale, nil
}
