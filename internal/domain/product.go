package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProductName  = NewInvalidArgument("product name is required")
	ErrInvalidProductPrice = NewInvalidArgument("product price must not be negative")
	ErrInvalidCatalogID    = NewInvalidArgument("product id must be positive")
)

// Product represents a catalog entry
type Product struct {
	ID          int64
	Name        string
	Description string
	Image       string
	Price       decimal.Decimal
}

// NewProduct creates a new product with validation
func NewProduct(id int64, name, description, image string, price decimal.Decimal) (*Product, error) {
	product := &Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: description,
		Image:       image,
		Price:       price,
	}

	if err := product.Validate(); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate performs business validation on the product
func (p *Product) Validate() error {
	if p.ID <= 0 {
		return ErrInvalidCatalogID
	}
	if p.Name == "" {
		return ErrInvalidProductName
	}
	if p.Price.IsNegative() {
		return ErrInvalidProductPrice
	}
	return nil
}
