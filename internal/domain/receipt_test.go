package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReceipt(t *testing.T) {
	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.FixedZone("BRT", -3*60*60))
	items := []ReceiptItem{
		{LineID: 1, ProductID: 1, Name: "Wireless Headphones", Price: price("79.99"), Quantity: 3, Subtotal: price("1")},
		{LineID: 2, ProductID: 5, Name: "USB-C Hub", Price: price("39.99"), Quantity: 1},
	}

	t.Run("builds receipt and recomputes totals", func(t *testing.T) {
		r, err := NewReceipt(" Ada Lovelace ", "ada@example.com", items, now)
		require.NoError(t, err)

		_, err = uuid.Parse(r.OrderID)
		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", r.CustomerName)
		assert.Equal(t, "ada@example.com", r.CustomerEmail)
		assert.Equal(t, time.UTC, r.Timestamp.Location())
		assert.True(t, r.Timestamp.Equal(now))

		require.Len(t, r.Items, 2)
		assert.Equal(t, "239.97", r.Items[0].Subtotal.StringFixed(2))
		assert.Equal(t, "39.99", r.Items[1].Subtotal.StringFixed(2))
		assert.Equal(t, "279.96", r.Total.StringFixed(2))
	})

	t.Run("copies items", func(t *testing.T) {
		in := []ReceiptItem{{ProductID: 1, Name: "A", Price: price("1"), Quantity: 1}}
		r, err := NewReceipt("Ada", "ada@example.com", in, now)
		require.NoError(t, err)

		in[0].Name = "changed"
		assert.Equal(t, "A", r.Items[0].Name)
	})

	t.Run("order ids are unique", func(t *testing.T) {
		a, err := NewReceipt("Ada", "ada@example.com", items, now)
		require.NoError(t, err)
		b, err := NewReceipt("Ada", "ada@example.com", items, now)
		require.NoError(t, err)
		assert.NotEqual(t, a.OrderID, b.OrderID)
	})

	tests := []struct {
		name    string
		cname   string
		email   string
		items   []ReceiptItem
		wantErr error
	}{
		{"missing name", " ", "ada@example.com", items, ErrCustomerNameRequired},
		{"missing email", "Ada", "", items, ErrInvalidCustomerEmail},
		{"malformed email", "Ada", "ada-at-example", items, ErrInvalidCustomerEmail},
		{"display name email", "Ada", "Ada <ada@example.com>", items, ErrInvalidCustomerEmail},
		{"no items", "Ada", "ada@example.com", nil, ErrEmptyCheckout},
		{"zero quantity", "Ada", "ada@example.com", []ReceiptItem{{Price: price("1"), Quantity: 0}}, ErrInvalidQuantity},
		{"negative price", "Ada", "ada@example.com", []ReceiptItem{{Price: price("-1"), Quantity: 1}}, ErrInvalidReceiptPrice},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewReceipt(tt.cname, tt.email, tt.items, now)
			assert.Nil(t, r)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, KindInvalidArgument, KindOf(err))
		})
	}
}
