package ports

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// CatalogService exposes read-only product lookups. Reads take no lock;
// a stale stock value for display purposes is acceptable.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}
