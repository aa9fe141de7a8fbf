package service

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
	"github.com/quickshop/storefront-api/internal/core/ports"
)

// CatalogService serves read-only product lookups. Reads bypass the
// inventory lock: a slightly stale stock figure is fine for display.
type CatalogService struct {
	products ports.ProductRepository
}

func NewCatalogService(products ports.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.FindByID(ctx, id)
}
