package handler

import (
	"log/slog"
	"net/http"

	"github.com/mrops-br/cart-api/internal/app/dto"
	"github.com/mrops-br/cart-api/internal/app/service"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/response"
)

// CheckoutHandler handles POST /checkout
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(service *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: service,
		logger:  logger,
	}
}

// Checkout handles POST /checkout
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, err)
		return
	}

	receipt, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		response.Error(w, err)
		return
	}

	response.JSON(w, http.StatusOK, receipt)
}
