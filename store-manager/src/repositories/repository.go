package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/debugutils"
	"github.com/narender/store-manager/common/docstore"
	commonmetric "github.com/narender/store-manager/common/telemetry/metric"
	commontrace "github.com/narender/store-manager/common/telemetry/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	productsCollection = "products"
	salesCollection    = "sales"

	layer = "repository"
)

// base carries what every repository needs: the store, the debug simulator and a logger.
type base struct {
	store     docstore.Store
	simulator *debugutils.Simulator
	logger    *slog.Logger
}

func (b base) databaseError(ctx context.Context, operation, message string, err error) *apierrors.AppError {
	b.logger.ErrorContext(ctx, "Database access error",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("error_code", apierrors.ErrCodeDatabaseAccess))
	return apierrors.NewApplicationError(apierrors.ErrCodeDatabaseAccess, message, err)
}

// endOperation records the operation metrics and closes its span.
func endOperation(ctx context.Context, span trace.Span, mc commonmetric.MetricsController, appErr *apierrors.AppError) {
	var err error
	if appErr != nil {
		err = appErr
	}
	mc.End(ctx, &err)
	commontrace.EndAppSpan(span, appErr)
}
