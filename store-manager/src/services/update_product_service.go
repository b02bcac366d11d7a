package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
	"github.com/narender/store-manager/store-manager/src/validation"
)

// Update replaces name and quantity of an existing product. Name uniqueness is not re-checked.
func (s *productService) Update(ctx context.Context, id string, rawName, quantity any) (product models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppProductIDKey.String(id))
	mc := commonmetric.StartMetricsTimer(layer, "update_product")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	if _, appErr = s.FindByID(ctx, id); appErr != nil {
		return models.Product{}, appErr
	}
	name, appErr := validation.ParseName(rawName)
	if appErr != nil {
		return models.Product{}, appErr
	}
	span.SetAttributes(attributes.AttrAppProductNameKey.String(name))
	qty, appErr := validation.ParseQuantity(quantity)
	if appErr != nil {
		return models.Product{}, appErr
	}

	product = models.Product{ID: id, Name: name, Quantity: qty}
	found, appErr := s.repo.Update(ctx, product)
	if appErr != nil {
		return models.Product{}, appErr
	}
	if !found {
		return models.Product{}, apierrors.InvalidData(apierrors.MsgWrongProductID)
	}

	commonmetric.RecordProductStock(ctx, id, qty)
	s.logger.InfoContext(ctx, "Product updated", slog.String("product_id", id), slog.Int("quantity", qty))
	return product, nil
}
