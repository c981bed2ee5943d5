package handler

import (
	"log/slog"
	"net/http"

	"github.com/mrops-br/cart-api/internal/app/service"
	"github.com/mrops-br/cart-api/internal/domain"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/response"
)

// ProductHandler handles HTTP requests for the catalog
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// GetProduct handles GET /products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ErrProductNotFound)
	if err != nil {
		response.Error(w, err)
		return
	}

	product, err := h.service.GetProductByID(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, products)
}
