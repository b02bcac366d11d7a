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

// Delete removes a product and returns it as it was. Sales that reference it are left alone.
func (s *productService) Delete(ctx context.Context, id string) (product models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "delete_product")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	product, appErr = s.FindByID(ctx, id)
	if appErr != nil {
		return models.Product{}, appErr
	}

	found, appErr := s.repo.Delete(ctx, id)
	if appErr != nil {
		return models.Product{}, appErr
	}
	if !found {
		return models.Product{}, apierrors.InvalidData(apierrors.MsgWrongProductID)
	}

	s.logger.InfoContext(ctx, "Product deleted", slog.String("product_id", id), slog.String("product_name", product.Name))
	return product, nil
}
