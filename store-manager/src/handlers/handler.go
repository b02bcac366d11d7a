package handlers

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	apierrors "github.com/narender/store-manager/common/apierrors"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"github.com/narender/store-manager/store-manager/src/services"
	"go.opentelemetry.io/otel/trace"
)

const layer = "handler"

type ProductHandler struct {
	service services.ProductService
	logger  *slog.Logger
}

func NewProductHandler(svc services.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

type SaleHandler struct {
	service services.SaleService
	logger  *slog.Logger
}

func NewSaleHandler(svc services.SaleService, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{
		service: svc,
		logger:  logger,
	}
}

// Register mounts the product and sale routes on router.
func Register(router fiber.Router, products *ProductHandler, sales *SaleHandler, health *HealthHandler) {
	router.Get("/health", health.HealthCheck)
	router.Get("/status", health.HealthCheck)

	productRoutes := router.Group("/products")
	productRoutes.Get("/", products.GetAll)
	productRoutes.Post("/", products.Create)
	productRoutes.Get("/:id", products.GetByID)
	productRoutes.Put("/:id", products.Update)
	productRoutes.Delete("/:id", products.Delete)

	saleRoutes := router.Group("/sales")
	saleRoutes.Get("/", sales.GetAll)
	saleRoutes.Post("/", sales.Create)
	saleRoutes.Get("/:id", sales.GetByID)
	saleRoutes.Put("/:id", sales.Update)
	saleRoutes.Delete("/:id", sales.Delete)
}

// malformedBody wraps a body decoding failure.
func malformedBody(err error) *apierrors.AppError {
	return apierrors.NewApplicationError(apierrors.ErrCodeMalformedData, apierrors.MsgInvalidRequestFormat, err)
}

func endRequest(ctx context.Context, span trace.Span, mc commonmetric.MetricsController, err error) {
	mc.End(ctx, &err)
	commontrace.EndSpan(span, &err, commontrace.AppErrorStatusMapper)
}
