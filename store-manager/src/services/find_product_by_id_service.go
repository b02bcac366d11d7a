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

// FindByID reports malformed and unknown ids alike as invalid_data "Wrong id format".
func (s *productService) FindByID(ctx context.Context, id string) (product models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "find_product_by_id")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	product, found, appErr := s.repo.FindByID(ctx, id)
	if appErr != nil {
		return models.Product{}, appErr
	}
	if !found {
		s.logger.DebugContext(ctx, "Product not found", slog.String("product_id", id))
		return models.Product{}, apierrors.InvalidData(apierrors.MsgWrongProductID)
	}
	return product, nil
}
