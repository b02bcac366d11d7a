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

// Add validates the lines, takes the sold units out of stock and records the
// sale. If recording fails the stock is put back.
func (s *saleService) Add(ctx context.Context, items []apirequests.SaleItemRequest) (sale models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleItemCount.Int(len(items)))
	mc := commonmetric.StartMetricsTimer(layer, "add_sale")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	s.logger.InfoContext(ctx, "Registering sale", slog.Int("items", len(items)))

	lines, products, appErr := s.validateSale(ctx, items)
	if appErr != nil {
		return models.Sale{}, appErr
	}
	if appErr = checkStock(lines, products, nil); appErr != nil {
		s.logger.WarnContext(ctx, "Sale blocked - insufficient stock")
		return models.Sale{}, appErr
	}

	applied, appErr := s.applyStockChanges(ctx, stockChanges(nil, lines))
	if appErr != nil {
		return models.Sale{}, appErr
	}

	sale, appErr = s.repo.Insert(ctx, lines)
	if appErr != nil {
		s.rollback(ctx, applied)
		return models.Sale{}, appErr
	}

	commonmetric.RecordSaleCreated(ctx, sale.Units())
	span.SetAttributes(attributes.AttrAppSaleIDKey.String(sale.ID))
	s.logger.InfoContext(ctx, "Sale registered", slog.String("sale_id", sale.ID), slog.Int("units", sale.Units()))
	return sale, nil
}
