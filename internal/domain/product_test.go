package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := NewProduct(1, "  Desk Lamp ", "LED", "lamp.png", price("34.99"))
		require.NoError(t, err)
		assert.Equal(t, "Desk Lamp", p.Name)
		assert.Equal(t, "34.99", p.Price.String())
	})

	t.Run("free product is allowed", func(t *testing.T) {
		_, err := NewProduct(2, "Sticker", "", "", decimal.Zero)
		assert.NoError(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewProduct(3, "  ", "", "", price("1"))
		assert.ErrorIs(t, err, ErrInvalidProductName)
	})

	t.Run("negative price", func(t *testing.T) {
		_, err := NewProduct(4, "Refund", "", "", price("-0.01"))
		assert.ErrorIs(t, err, ErrInvalidProductPrice)
	})

	t.Run("non-positive id", func(t *testing.T) {
		_, err := NewProduct(0, "Nothing", "", "", price("1"))
		assert.ErrorIs(t, err, ErrInvalidCatalogID)
	})
}
