package dto

import "github.com/mrops-br/cart-api/internal/domain"

const (
	MessageItemAdded       = "Item added to cart"
	MessageCartUpdated     = "Cart updated"
	MessageQuantityUpdated = "Quantity updated"
	MessageItemRemoved     = "Item removed from cart"
)

// AddCartItemRequest is the body of POST /cart
type AddCartItemRequest struct {
	ProductID *int64 `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// UpdateCartItemRequest is the body of PUT /cart/{id}
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity"`
}

// CartLineResponse is returned after an add
type CartLineResponse struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"productId"`
	Quantity  int    `json:"quantity"`
	Message   string `json:"message,omitempty"`
}

// QuantityUpdatedResponse is returned after a quantity update
type QuantityUpdatedResponse struct {
	ID       int64  `json:"id"`
	Quantity int    `json:"quantity"`
	Message  string `json:"message,omitempty"`
}

// ItemRemovedResponse is returned after a removal
type ItemRemovedResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message,omitempty"`
}

// CartItemResponse is one priced cart line. ID repeats LineID for clients
// that address lines by "id".
type CartItemResponse struct {
	ID        int64   `json:"id"`
	LineID    int64   `json:"lineId"`
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CartResponse is the body of GET /cart
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
}

// ToCartLineResponse converts a stored line into the add response
func ToCartLineResponse(line *domain.CartLine, created bool) *CartLineResponse {
	message := MessageCartUpdated
	if created {
		message = MessageItemAdded
	}
	return &CartLineResponse{
		ID:        line.ID,
		ProductID: line.ProductID,
		Quantity:  line.Quantity,
		Message:   message,
	}
}

// ToCartResponse converts a priced cart
func ToCartResponse(cart *domain.Cart) *CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
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
	return &CartResponse{
		Items: items,
		Total: Money(cart.Total),
	}
}
