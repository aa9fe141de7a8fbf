package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/quickshop/storefront-api/internal/core/domain"
	"github.com/quickshop/storefront-api/internal/core/ports"
)

// OrderService runs the checkout transaction end to end: cart validation,
// stock reservation, and the durable commit of both collections.
type OrderService struct {
	ledger   ports.InventoryLedger
	products ports.ProductRepository
	orders   ports.OrderRepository
	logger   zerolog.Logger

	// mu serializes the read-reserve-write cycle on the products
	// collection. Two overlapping checkouts must never both observe the
	// pre-decrement stock of the same product.
	mu sync.Mutex
}

func NewOrderService(
	ledger ports.InventoryLedger,
	products ports.ProductRepository,
	orders ports.OrderRepository,
	logger zerolog.Logger,
) *OrderService {
	return &OrderService{
		ledger:   ledger,
		products: products,
		orders:   orders,
		logger:   logger,
	}
}

// PlaceOrder commits one checkout. The products write happens under the
// inventory lock; the order append happens after it, so a crash between
// the two writes can only leave stock decremented without an order record,
// never an order without the matching stock decrement.
func (s *OrderService) PlaceOrder(ctx context.Context, userID string, cart []domain.CartItem) (*domain.Order, error) {
	if len(cart) == 0 {
		return nil, domain.ErrEmptyCart
	}

	items, err := s.reserveAndCommitStock(ctx, cart)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, item := range items {
		total += item.LineTotal
	}

	order := &domain.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    domain.StatusPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.orders.Append(ctx, order); err != nil {
		// Stock is already decremented. This is the one accepted
		// inconsistency window; log it loudly so it can be reconciled.
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Str("order_id", order.ID).
			Float64("total", order.Total).
			Msg("order not recorded after stock decrement, reconciliation required")
		return nil, err
	}

	s.logger.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Int("items", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed")

	return order, nil
}

// reserveAndCommitStock holds the inventory lock from the stock read
// through the completed products write, on success and every failure path.
func (s *OrderService) reserveAndCommitStock(ctx context.Context, cart []domain.CartItem) ([]domain.OrderLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, updated, err := s.ledger.Reserve(ctx, cart)
	if err != nil {
		return nil, err
	}

	if err := s.products.SaveAll(ctx, updated); err != nil {
		return nil, err
	}
	return items, nil
}

// ListOrdersForUser returns the user's orders in insertion order.
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}
