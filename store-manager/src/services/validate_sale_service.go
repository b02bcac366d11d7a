package services

import (
	"context"
	"log/slog"
	"sync"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/apirequests"
	"github.com/narender/store-manager/common/telemetry/attributes"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
	"github.com/narender/store-manager/store-manager/src/validation"
)

type itemCheck struct {
	line    models.SaleItem
	product models.Product
	appErr  *apierrors.AppError
}

// validateSale checks every line concurrently against the live product state.
// Results keep input order and the first failing position decides the error.
// Lookup failures that are not business errors are returned unchanged.
func (s *saleService) validateSale(ctx context.Context, items []apirequests.SaleItemRequest) (lines []models.SaleItem, products map[string]models.Product, appErr *apierrors.AppError) {
	ctx, span := commontrace.StartSpan(ctx, attributes.AttrAppSaleItemCount.Int(len(items)))
	defer func() { commontrace.EndAppSpan(span, appErr) }()

	if len(items) == 0 {
		return nil, nil, apierrors.InvalidData(apierrors.MsgInvalidSaleItem)
	}

	checks := make([]itemCheck, len(items))
	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()
			checks[i] = s.checkItem(ctx, item)
		}()
	}
	wg.Wait()

	lines = make([]models.SaleItem, 0, len(items))
	products = make(map[string]models.Product, len(items))
	for i, check := range checks {
		if check.appErr != nil {
			s.logger.WarnContext(ctx, "Sale line rejected",
				slog.Int("position", i),
				slog.Any("product_id", items[i].ProductID),
				slog.String("error_code", check.appErr.Code))
			return nil, nil, check.appErr
		}
		lines = append(lines, check.line)
		products[check.product.ID] = check.product
	}
	return lines, products, nil
}

// checkItem folds a non-string product id, an unknown product and a bad
// quantity into one invalid_data error.
func (s *saleService) checkItem(ctx context.Context, item apirequests.SaleItemRequest) itemCheck {
	quantity, quantityErr := validation.ParseQuantity(item.Quantity)
	productID, ok := item.ProductID.(string)
	if !ok {
		return itemCheck{appErr: apierrors.InvalidData(apierrors.MsgInvalidSaleItem)}
	}
	product, lookupErr := s.products.FindByID(ctx, productID)

	if lookupErr != nil && !apierrors.IsBusiness(lookupErr) {
		return itemCheck{appErr: lookupErr}
	}
	if lookupErr != nil || quantityErr != nil {
		return itemCheck{appErr: apierrors.InvalidData(apierrors.MsgInvalidSaleItem)}
	}
	return itemCheck{
		line:    models.SaleItem{ProductID: product.ID, Quantity: quantity},
		product: product,
	}
}

// checkStock compares the summed quantity per product with its stock plus
// whatever the sale being replaced already holds of it.
func checkStock(lines []models.SaleItem, products map[string]models.Product, held map[string]int) *apierrors.AppError {
	totals, order := models.QuantitiesByProduct(lines)
	for _, id := range order {
		if totals[id] > products[id].Quantity+held[id] {
			return apierrors.NewBusinessError(apierrors.ErrCodeStockProblem, apierrors.MsgInsufficientStock, nil)
		}
	}
	return nil
}
