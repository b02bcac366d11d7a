package services

import (
	"context"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

func (s *saleService) FindByID(ctx context.Context, id string) (sale models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "find_sale_by_id")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	sale, found, appErr := s.repo.FindByID(ctx, id)
	if appErr != nil {
		return models.Sale{}, appErr
	}
	if !found {
		return models.Sale{}, apierrors.NewBusinessError(apierrors.ErrCodeNotFound, apierrors.MsgSaleNotFound, nil)
	}
	return sale, nil
}
