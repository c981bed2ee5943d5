package handler

import (
	"log/slog"
	"net/http"

	"github.com/mrops-br/cart-api/internal/app/dto"
	"github.com/mrops-br/cart-api/internal/app/service"
	"github.com/mrops-br/cart-api/internal/domain"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/response"
)

// CartHandler handles HTTP requests for the cart
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.service.GetCart(r.Context())
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, cart)
}

// AddItem handles POST /cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, err)
		return
	}

	line, err := h.service.AddItem(r.Context(), &req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, line)
}

// UpdateQuantity handles PUT /cart/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, err)
		return
	}

	// quantity is validated before the line is resolved
	if req.Quantity == nil {
		response.Error(w, domain.ErrInvalidQuantity)
		return
	}
	if err := domain.ValidateQuantity(*req.Quantity); err != nil {
		response.Error(w, err)
		return
	}

	id, err := pathID(r, "id", domain.ErrCartLineNotFound)
	if err != nil {
		response.Error(w, err)
		return
	}

	updated, err := h.service.UpdateQuantity(r.Context(), id, &req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, updated)
}

// RemoveItem handles DELETE /cart/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", domain.ErrCartLineNotFound)
	if err != nil {
		response.Error(w, err)
		return
	}

	removed, err := h.service.RemoveItem(r.Context(), id)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, removed)
}
