package ports

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the products
// collection. SaveAll overwrites the whole collection; callers are
// responsible for serializing read-modify-write cycles.
type ProductRepository interface {
	LoadAll(ctx context.Context) ([]domain.Product, error)
	SaveAll(ctx context.Context, products []domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
}
