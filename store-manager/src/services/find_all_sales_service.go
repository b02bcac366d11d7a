package services

import (
	"context"

	apierrors "github.com/narender/store-manager/common/apierrors"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

func (s *saleService) FindAll(ctx context.Context) (sales []models.Sale, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx)
	mc := commonmetric.StartMetricsTimer(layer, "find_all_sales")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	return s.repo.FindAll(ctx)
}
