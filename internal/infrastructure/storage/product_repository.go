package storage

import (
	"context"
	"path/filepath"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

const productsFile = "products.json"

// ProductRepository persists the products collection to products.json.
type ProductRepository struct {
	coll *Collection[domain.Product]
}

func NewProductRepository(dataDir string) *ProductRepository {
	return &ProductRepository{coll: NewCollection[domain.Product](filepath.Join(dataDir, productsFile))}
}

func (r *ProductRepository) LoadAll(_ context.Context) ([]domain.Product, error) {
	return r.coll.Load()
}

func (r *ProductRepository) SaveAll(_ context.Context, products []domain.Product) error {
	return r.coll.Save(products)
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	products, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i]
			return &p, nil
		}
	}
	return nil, &domain.ProductNotFoundError{ProductID: id}
}

// SeedIfMissing writes the default catalog when products.json does not
// exist yet. An existing file, even an empty one, is left untouched.
func (r *ProductRepository) SeedIfMissing(_ context.Context, products []domain.Product) error {
	if r.coll.Exists() {
		return nil
	}
	return r.coll.Save(products)
}
