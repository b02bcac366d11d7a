package services

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/apirequests"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/models"
	"github.com/narender/store-manager/store-manager/src/repositories"
	"go.opentelemetry.io/otel/trace"
)

const layer = "service"

type ProductService interface {
	FindAll(ctx context.Context) ([]models.Product, *apierrors.AppError)
	FindByID(ctx context.Context, id string) (models.Product, *apierrors.AppError)
	Add(ctx context.Context, name, quantity any) (models.Product, *apierrors.AppError)
	Update(ctx context.Context, id string, name, quantity any) (models.Product, *apierrors.AppError)
	Delete(ctx context.Context, id string) (models.Product, *apierrors.AppError)
	// AdjustStock changes the stock of a product by delta without letting it go below zero.
	AdjustStock(ctx context.Context, id string, delta int) (int, *apierrors.AppError)
}

type SaleService interface {
	FindAll(ctx context.Context) ([]models.Sale, *apierrors.AppError)
	FindByID(ctx context.Context, id string) (models.Sale, *apierrors.AppError)
	Add(ctx context.Context, items []apirequests.SaleItemRequest) (models.Sale, *apierrors.AppError)
	Update(ctx context.Context, id string, items []apirequests.SaleItemRequest) (models.Sale, *apierrors.AppError)
	Delete(ctx context.Context, id string) (models.Sale, *apierrors.AppError)
}

type productService struct {
	repo   repositories.ProductRepository
	logger *slog.Logger
}

func NewProductService(repo repositories.ProductRepository, logger *slog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger,
	}
}

type saleService struct {
	repo     repositories.SaleRepository
	products ProductService
	logger   *slog.Logger
}

// NewSaleService builds the sale service. Every inventory read and write goes
// through products.
func NewSaleService(repo repositories.SaleRepository, products ProductService, logger *slog.Logger) SaleService {
	return &saleService{
		repo:     repo,
		products: products,
		logger:   logger,
	}
}

func endOperation(ctx context.Context, span trace.Span, mc commonmetric.MetricsController, appErr *apierrors.AppError) {
	var err error
	if appErr != nil {
		err = appErr
	}
	mc.End(ctx, &err)
	commontrace.EndAppSpan(span, appErr)
}
