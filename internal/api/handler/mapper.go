package handler

import "github.com/quickshop/storefront-api/internal/core/domain"

// --- Request → Service input ---

func toCart(items []cartItemRequest) []domain.CartItem {
	cart := make([]domain.CartItem, 0, len(items))
	for _, it := range items {
		cart = append(cart, domain.CartItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return cart
}

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		Stock:       p.Stock,
	}
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := make([]orderLineItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, orderLineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: it.LineTotal,
		})
	}
	return orderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		Items:     items,
		Total:     o.Total,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt,
	}
}
