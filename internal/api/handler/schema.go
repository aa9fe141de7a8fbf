package handler

import "time"

// --- Request / Response types ---
//
// Transport-owned types, intentionally separate from domain structs so the
// JSON contract is not coupled to internal changes. The order request
// deliberately has no price or total fields: whatever a client sends there
// is dropped at decode time and pricing is recomputed from the catalog.

type registerRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name"     validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image,omitempty"`
	Stock       int     `json:"stock"`
}

type cartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"   validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

type orderLineItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}

type orderResponse struct {
	ID        string                  `json:"id"`
	UserID    string                  `json:"user_id"`
	Items     []orderLineItemResponse `json:"items"`
	Total     float64                 `json:"total"`
	Status    string                  `json:"status"`
	CreatedAt time.Time               `json:"created_at"`
}
