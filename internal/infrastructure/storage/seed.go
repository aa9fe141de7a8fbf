package storage

import "github.com/quickshop/storefront-api/internal/core/domain"

// DefaultCatalog is the initial product set written on first boot when no
// products collection exists yet.
func DefaultCatalog() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Laptop",
			Price:       999.99,
			Description: "High-performance laptop for work and gaming",
			Image:       "/images/laptop.jpg",
			Stock:       10,
		},
		{
			ID:          "2",
			Name:        "Smartphone",
			Price:       699.99,
			Description: "Latest smartphone with advanced features",
			Image:       "/images/phone.jpg",
			Stock:       15,
		},
		{
			ID:          "3",
			Name:        "Headphones",
			Price:       199.99,
			Description: "Wireless noise-canceling headphones",
			Image:       "/images/headphones.jpg",
			Stock:       20,
		},
	}
}
