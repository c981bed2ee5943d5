package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity bounds the quantity a single cart line can hold
const MaxLineQuantity = math.MaxInt32

// MoneyPlaces is the number of decimal places money is rounded to for display
const MoneyPlaces = 2

// CartLine is one entry of the cart. At most one line exists per product.
type CartLine struct {
	ID        int64
	ProductID int64
	Quantity  int
}

// ValidateQuantity rejects quantities outside [1, MaxLineQuantity]
func ValidateQuantity(quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}
	if quantity > MaxLineQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

// CartItem is a cart line joined with its product
type CartItem struct {
	LineID    int64
	ProductID int64
	Name      string
	Price     decimal.Decimal
	Image     string
	Quantity  int
	Subtotal  decimal.Decimal
}

// Cart is the priced view over every cart line
type Cart struct {
	Items []CartItem
	Total decimal.Decimal
}

// Subtotal returns quantity * price
func Subtotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// RoundMoney rounds an amount to cents. Round is half away from zero, which
// is half-up for the non-negative amounts handled here.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// PriceCart joins lines with products and computes subtotals and the total.
// A line whose product is absent from products is a consistency fault.
func PriceCart(lines []*CartLine, products map[int64]*Product) (*Cart, error) {
	cart := &Cart{
		Items: make([]CartItem, 0, len(lines)),
		Total: decimal.Zero,
	}

	sum := decimal.Zero
	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok {
			return nil, ErrCartInconsistent
		}

		subtotal := Subtotal(product.Price, line.Quantity)
		sum = sum.Add(subtotal)

		cart.Items = append(cart.Items, CartItem{
			LineID:    line.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.Image,
			Quantity:  line.Quantity,
			Subtotal:  RoundMoney(subtotal),
		})
	}

	cart.Total = RoundMoney(sum)
	return cart, nil
}
