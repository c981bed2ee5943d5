package dto

import (
	"time"

	"github.com/mrops-br/cart-api/internal/domain"
	"github.com/shopspring/decimal"
)

// CheckoutItemRequest is one priced line of the submitted cart snapshot
type CheckoutItemRequest struct {
	ID        int64            `json:"id"`
	ProductID int64            `json:"productId"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price"`
	Image     string           `json:"image"`
	Quantity  int              `json:"quantity"`
}

// CheckoutRequest is the body of POST /checkout
type CheckoutRequest struct {
	CartItems []CheckoutItemRequest `json:"cartItems"`
	Name      string                `json:"name"`
	Email     string                `json:"email"`
}

// ReceiptResponse is the body returned by POST /checkout
type ReceiptResponse struct {
	OrderID       string             `json:"orderId"`
	CustomerName  string             `json:"customerName"`
	CustomerEmail string             `json:"customerEmail"`
	Timestamp     time.Time          `json:"timestamp"`
	Items         []CartItemResponse `json:"items"`
	Total         float64            `json:"total"`
}

// ToReceiptItems converts the request items. A missing price is rejected.
func ToReceiptItems(items []CheckoutItemRequest) ([]domain.ReceiptItem, error) {
	out := make([]domain.ReceiptItem, len(items))
	for i, item := range items {
		if item.Price == nil {
			return nil, domain.ErrInvalidReceiptPrice
		}
		out[i] = domain.ReceiptItem{
			LineID:    item.ID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     *item.Price,
			Image:     item.Image,
			Quantity:  item.Quantity,
		}
	}
	return out, nil
}

// ToReceiptResponse converts a domain receipt
func ToReceiptResponse(r *domain.Receipt) *ReceiptResponse {
	items := make([]CartItemResponse, len(r.Items))
	for i, item := range r.Items {
		items[i] = CartItemResponse{
			ID:        item.LineID,
			LineID:    item.LineID,
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     Money(item.Price),
			Image:     item.Image,
			Quantity:  item.Quantity,
			Subtotal:  Money(item.Subtotal),
		}
	}
	return &ReceiptResponse{
		OrderID:       r.OrderID,
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		Timestamp:     r.Timestamp,
		Items:         items,
		Total:         Money(r.Total),
	}
}
