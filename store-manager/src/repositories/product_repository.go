package repositories

import (
	"context"
	"log/slog"

	apierrors "github.com/narender/store-manager/common/apierrors"
	"github.com/narender/store-manager/common/debugutils"
	"github.com/narender/store-manager/common/docstore"
	"github.com/narender/store-manager/store-manager/src/models"
)

// ProductRepository persists products. found is false for unknown or malformed ids.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (product models.Product, found bool, appErr *apierrors.AppError)
	FindByName(ctx context.Context, name string) (product models.Product, found bool, appErr *apierrors.AppError)
	FindAll(ctx context.Context) ([]models.Product, *apierrors.AppError)
	Insert(ctx context.Context, name string, quantity int) (models.Product, *apierrors.AppError)
	Update(ctx context.Context, product models.Product) (found bool, appErr *apierrors.AppError)
	Delete(ctx context.Context, id string) (found bool, appErr *apierrors.AppError)
	// IncrementStock adds delta to the product quantity atomically and returns the new quantity.
	IncrementStock(ctx context.Context, id string, delta int) (int, *apierrors.AppError)
}

type productRepository struct {
	base
}

func NewProductRepository(store docstore.Store, simulator *debugutils.Simulator, logger *slog.Logger) ProductRepository {
	return &productRepository{base: base{store: store, simulator: simulator, logger: logger}}
}
