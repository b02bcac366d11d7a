package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
)

func (s *productService) FindAll(ctx context.Context) (products []models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx)
	mc := commonmetric.StartMetricsTimer(layer, "find_all_products")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	products, appErr = s.repo.FindAll(ctx)
	if appErr != nil {
		return nil, appErr
	}

	s.logger.DebugContext(ctx, "Listing products", slog.Int("count", len(products)))
	return products, nil
}
