package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/debugutils"
	"github.com/narender/store-manager/common/docstore"
	"github.com/narender/store-manager/store-manager/src/models"
)

// SaleRepository persists sales. found is false for unknown or malformed ids.
type SaleRepository interface {
	FindByID(ctx context.Context, id string) (sale models.Sale, found bool, appErr *apierrors.AppError)
	FindAll(ctx context.Context) ([]models.Sale, *apierrors.AppError)
	Insert(ctx context.Context, items []models.SaleItem) (models.Sale, *apierrors.AppError)
	Update(ctx context.Context, sale models.Sale) (found bool, appErr *apierrors.AppError)
	Delete(ctx context.Context, id string) (found bool, appErr *apierrors.AppError)
}

type saleRepository struct {
	base
}

func NewSaleRepository(store docstore.Store, simulator *debugutils.Simulator, logger *slog.Logger) SaleRepository {
	return &saleRepository{base: base{store: store, simulator: simulator, logger: logger}}
}
