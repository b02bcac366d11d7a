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

// Add checks name, quantity and uniqueness, then reports the first failure in
// that order. The uniqueness lookup runs even when an earlier check failed.
func (s *productService) Add(ctx context.Context, rawName, quantity any) (product models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx)
	mc := commonmetric.StartMetricsTimer(layer, "add_product")
	defer func() { endOperation(ctx, span, mc, appErr) }()

	name, nameErr := validation.ParseName(rawName)
	span.SetAttributes(attributes.AttrAppProductNameKey.String(name))
	s.logger.InfoContext(ctx, "Adding product", slog.Any("product_name", rawName))

	qty, quantityErr := validation.ParseQuantity(quantity)
	_, exists, lookupErr := s.repo.FindByName(ctx, name)

	switch {
	case nameErr != nil:
		appErr = nameErr
	case quantityErr != nil:
		appErr = quantityErr
	case lookupErr != nil:
		appErr = lookupErr
	case exists:
		appErr = apierrors.InvalidData(apierrors.MsgProductExists)
	}
	if appErr != nil {
		s.logger.WarnContext(ctx, "Product rejected",
			slog.Any("product_name", rawName),
			slog.String("error_code", appErr.Code),
			slog.String("reason", appErr.Message))
		return models.Product{}, appErr
	}

	product, appErr = s.repo.Insert(ctx, name, qty)
	if appErr != nil {
		return models.Product{}, appErr
	}

	commonmetric.RecordProductStock(ctx, product.ID, product.Quantity)
	s.logger.InfoContext(ctx, "Product added", slog.String("product_id", product.ID), slog.Int("quantity", product.Quantity))
	return product, nil
}
