package domain

import "time"

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

// StatusPending is the only status produced by checkout; no further
// transitions (fulfilment, cancellation, refund) are modelled.
const StatusPending OrderStatus = "pending"

// OrderLineItem is a priced line inside a committed order. UnitPrice and
// Name are snapshots of the product at commit time.
type OrderLineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

// Order is the immutable record of a committed checkout. Created once,
// never mutated, never deleted.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Items     []OrderLineItem `json:"items"`
	Total     float64         `json:"total"`
	Status    OrderStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
