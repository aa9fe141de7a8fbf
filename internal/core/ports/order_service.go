package ports

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
)

// OrderService defines the checkout use cases.
type OrderService interface {
	// PlaceOrder atomically validates the cart, decrements stock, and
	// records a new order. On any failure no stock change is persisted.
	PlaceOrder(ctx context.Context, userID string, cart []domain.CartItem) (*domain.Order, error)
	ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error)
}

// InventoryLedger computes a stock reservation for a cart entirely in
// memory. On success it returns the priced line items plus the full
// products collection with reserved stock decremented; the caller persists.
type InventoryLedger interface {
	Reserve(ctx context.Context, cart []domain.CartItem) ([]domain.OrderLineItem, []domain.Product, error)
}
