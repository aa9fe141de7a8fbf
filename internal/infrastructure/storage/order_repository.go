package storage

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

const ordersFile = "orders.json"

// OrderRepository persists the orders collection to orders.json. Append is
// a read-modify-write of the whole file, so it serializes concurrent
// appends behind its own lock, independent of the products lock.
type OrderRepository struct {
	coll *Collection[domain.Order]
	mu   sync.Mutex
}

func NewOrderRepository(dataDir string) *OrderRepository {
	return &OrderRepository{coll: NewCollection[domain.Order](filepath.Join(dataDir, ordersFile))}
}

// Append loads the collection, adds the order at the end, and rewrites the
// file. Insertion order is the only ordering the collection has.
func (r *OrderRepository) Append(_ context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	orders, err := r.coll.Load()
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	return r.coll.Save(orders)
}

func (r *OrderRepository) FindByUser(_ context.Context, userID string) ([]domain.Order, error) {
	orders, err := r.coll.Load()
	if err != nil {
		return nil, err
	}
	var matched []domain.Order
	for _, o := range orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
