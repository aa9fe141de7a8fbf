package domain

// Product is a catalog entry backed by the products collection.
// Stock is never negative; it is mutated only inside a committed checkout.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `json:"stock"`
}

// CartItem is a client-supplied line in a checkout request. It carries no
// price: pricing is always resolved server-side against the catalog.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}
