package ports

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// OrderRepository defines persistence operations for the orders collection.
// Orders are append-only: no update or delete operations exist.
type OrderRepository interface {
	Append(ctx context.Context, order *domain.Order) error
	// FindByUser returns the user's orders in original insertion order.
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
