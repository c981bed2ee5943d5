package dto

import (
	"github.com/mrops-br/cart-api/internal/domain"
	"github.com/shopspring/decimal"
)

// ProductResponse represents the product response
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       Money(p.Price),
		Image:       p.Image,
		Description: p.Description,
	}
}

// ToProductResponseList converts a list of domain Products to ProductResponse list
func ToProductResponseList(products []*domain.Product) []*ProductResponse {
	responses := make([]*ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}

// Money renders a cent-rounded amount as a JSON number
func Money(d decimal.Decimal) float64 {
	return domain.RoundMoney(d).InexactFloat64()
}
