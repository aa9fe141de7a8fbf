package service

import (
	"context"

	"github.com/quickshop/storefront-api/internal/core/domain"
	"github.com/quickshop/storefront-api/internal/core/ports"
)

// InventoryLedger validates carts against current stock and computes
// reservations. All work happens in memory: nothing is persisted here, so
// a failed reservation has no side effects anywhere.
type InventoryLedger struct {
	products ports.ProductRepository
}

func NewInventoryLedger(products ports.ProductRepository) *InventoryLedger {
	return &InventoryLedger{products: products}
}

// Reserve checks each cart line in order against the catalog. The first
// failing line determines the error and nothing is reserved. On success it
// returns the priced line items and the full products collection with the
// reserved quantities already decremented, ready to be persisted by the
// caller. Callers must serialize Reserve with the subsequent products
// write; the ledger itself takes no lock.
func (l *InventoryLedger) Reserve(ctx context.Context, cart []domain.CartItem) ([]domain.OrderLineItem, []domain.Product, error) {
	products, err := l.products.LoadAll(ctx)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]int, len(products))
	for i := range products {
		byID[products[i].ID] = i
	}

	items := make([]domain.OrderLineItem, 0, len(cart))
	for _, line := range cart {
		if line.Quantity <= 0 {
			return nil, nil, &domain.InvalidQuantityError{ProductID: line.ProductID, Quantity: line.Quantity}
		}

		idx, ok := byID[line.ProductID]
		if !ok {
			return nil, nil, &domain.ProductNotFoundError{ProductID: line.ProductID}
		}

		p := &products[idx]
		if line.Quantity > p.Stock {
			return nil, nil, &domain.InsufficientStockError{
				ProductID: p.ID,
				Requested: line.Quantity,
				Available: p.Stock,
			}
		}

		p.Stock -= line.Quantity
		items = append(items, domain.OrderLineItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  line.Quantity,
			LineTotal: p.Price * float64(line.Quantity),
		})
	}

	return items, products, nil
}
