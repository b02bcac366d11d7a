package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

// Delete puts the sold units back in stock, removes the sale and returns it as
// it was. An unknown sale is invalid_data "Wrong sale ID format".
func (s *saleService) Delete(ctx context.Context, id string) (sale models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "delete_sale")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	sale, found, appErr := s.repo.FindByID(ctx, id)
	if appErr != nil {
		return models.Sale{}, appErr
	}
	if !found {
		return models.Sale{}, apierrors.InvalidData(apierrors.MsgWrongSaleID)
	}

	applied, appErr := s.applyStockChanges(ctx, stockChanges(sale.ItemsSold, nil))
	if appErr != nil {
		return models.Sale{}, appErr
	}

	found, appErr = s.repo.Delete(ctx, id)
	if appErr == nil && !found {
		appErr = apierrors.InvalidData(apierrors.MsgWrongSaleID)
	}
	if appErr != nil {
		s.rollback(ctx, applied)
		return models.Sale{}, appErr
	}

	s.logger.InfoContext(ctx, "Sale deleted", slog.String("sale_id", id), slog.Int("units_returned", sale.Units()))
	return sale, nil
}
