package memory

import (
	"github.com/mrops-br/cart-api/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the demo products the store starts with
func DefaultCatalog() []*domain.Product {
	return []*domain.Product{
		product(1, "Wireless Headphones", "79.99", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300", "Premium sound quality"),
		product(2, "Smart Watch", "199.99", "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300", "Fitness tracking & notifications"),
		product(3, "Laptop Stand", "49.99", "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=300", "Ergonomic aluminum design"),
		product(4, "Mechanical Keyboard", "129.99", "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=300", "RGB backlit gaming keyboard"),
		product(5, "USB-C Hub", "39.99", "https://images.unsplash.com/photo-1625948515291-69613efd103f?w=300", "7-in-1 connectivity"),
		product(6, "Webcam HD", "89.99", "https://images.unsplash.com/photo-1614624532983-4ce03382d63d?w=300", "1080p video quality"),
		product(7, "Desk Lamp", "34.99", "https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=300", "LED with adjustable brightness"),
		product(8, "Mouse Pad XL", "24.99", "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=300", "Extended gaming surface"),
	}
}

func product(id int64, name, price, image, description string) *domain.Product {
	return &domain.Product{
		ID:          id,
		Name:        name,
		Description: description,
		Image:       image,
		Price:       decimal.RequireFromString(price),
	}
}
