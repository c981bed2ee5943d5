package domain

import (
	"context"
)

// ProductRepository defines the read-only contract of the catalog
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
}

// CartRepository defines the contract for cart line storage.
// Implementations must run each method atomically.
type CartRepository interface {
	// Merge adds quantity to the line for productID, creating the line if
	// none exists. It reports whether a new line was created.
	Merge(ctx context.Context, productID int64, quantity int) (line *CartLine, created bool, err error)
	FindByID(ctx context.Context, id int64) (*CartLine, error)
	FindAll(ctx context.Context) ([]*CartLine, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) (*CartLine, error)
	Delete(ctx context.Context, id int64) error
}
