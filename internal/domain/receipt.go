package domain

import (
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrCustomerNameRequired = NewInvalidArgument("customer name is required")
	ErrInvalidCustomerEmail = NewInvalidArgument("a valid customer email is required")
	ErrEmptyCheckout        = NewInvalidArgument("Cart is empty")
	ErrInvalidReceiptPrice  = NewInvalidArgument("item price must not be negative")
)

// ReceiptItem is one priced line copied into a receipt
type ReceiptItem struct {
	LineID    int64
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Image     string
	Quantity  int
	Subtotal  decimal.Decimal
}

// Receipt is the immutable record produced at checkout
type Receipt struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	Timestamp     time.Time
	Items         []ReceiptItem
	Total         decimal.Decimal
}

// NewReceipt validates the customer and items and builds a receipt. Item
// subtotals and the total are recomputed from price and quantity.
func NewReceipt(name, email string, items []ReceiptItem, now time.Time) (*Receipt, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCustomerNameRequired
	}

	email = strings.TrimSpace(email)
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return nil, ErrInvalidCustomerEmail
	}

	if len(items) == 0 {
		return nil, ErrEmptyCheckout
	}

	copied := make([]ReceiptItem, len(items))
	sum := decimal.Zero
	for i, item := range items {
		if err := ValidateQuantity(item.Quantity); err != nil {
			return nil, err
		}
		if item.Price.IsNegative() {
			return nil, ErrInvalidReceiptPrice
		}

		subtotal := Subtotal(item.Price, item.Quantity)
		sum = sum.Add(subtotal)

		item.Subtotal = RoundMoney(subtotal)
		copied[i] = item
	}

	return &Receipt{
		OrderID:       uuid.New().String(),
		CustomerName:  name,
		CustomerEmail: email,
		Timestamp:     now.UTC(),
		Items:         copied,
		Total:         RoundMoney(sum),
	}, nil
}
