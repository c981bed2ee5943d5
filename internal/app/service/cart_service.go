package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mrops-br/cart-api/internal/app/dto"
	"github.com/mrops-br/cart-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CartService enforces the cart rules: merge-on-add, quantity validation,
// referential checks against the catalog and pricing.
type CartService struct {
	cart           domain.CartRepository
	catalog        domain.ProductRepository
	tracer         trace.Tracer
	logger         *slog.Logger
	cartOperations metric.Int64Counter
	itemsAdded     metric.Int64Counter
}

// NewCartService creates a new cart service
func NewCartService(
	cart domain.CartRepository,
	catalog domain.ProductRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *CartService {
	cartOperations, _ := meter.Int64Counter(
		"cart.operations",
		metric.WithDescription("Total number of cart operations"),
	)

	itemsAdded, _ := meter.Int64Counter(
		"cart.items.added",
		metric.WithDescription("Total quantity of items added to the cart"),
		metric.WithUnit("{item}"),
	)

	return &CartService{
		cart:           cart,
		catalog:        catalog,
		tracer:         tracer,
		logger:         logger,
		cartOperations: cartOperations,
		itemsAdded:     itemsAdded,
	}
}

// AddItem adds quantity of a product to the cart, merging into the existing
// line for that product if there is one.
func (s *CartService) AddItem(ctx context.Context, req *dto.AddCartItemRequest) (resp *dto.CartLineResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "CartService.AddItem")
	defer span.End()
	defer func() { countOperation(ctx, s.cartOperations, "add", err) }()

	if req.ProductID == nil || *req.ProductID <= 0 {
		recordFailure(ctx, span, s.logger, "Invalid add to cart request", domain.ErrInvalidProductID)
		return nil, domain.ErrInvalidProductID
	}
	if req.Quantity == nil {
		recordFailure(ctx, span, s.logger, "Invalid add to cart request", domain.ErrInvalidQuantity)
		return nil, domain.ErrInvalidQuantity
	}

	productID, quantity := *req.ProductID, *req.Quantity
	span.SetAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("cart.quantity", quantity),
	)

	if err := domain.ValidateQuantity(quantity); err != nil {
		recordFailure(ctx, span, s.logger, "Invalid add to cart request", err,
			slog.Int("quantity", quantity),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Adding item to cart",
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)

	if _, err := s.catalog.FindByID(ctx, productID); err != nil {
		recordFailure(ctx, span, s.logger, "Product lookup failed", err,
			slog.Int64("product_id", productID),
		)
		return nil, err
	}

	line, created, err := s.cart.Merge(ctx, productID, quantity)
	if err != nil {
		recordFailure(ctx, span, s.logger, "Failed to store cart line", err,
			slog.Int64("product_id", productID),
		)
		return nil, fmt.Errorf("merge cart line: %w", err)
	}

	s.itemsAdded.Add(ctx, int64(quantity),
		metric.WithAttributes(attribute.Int64("product.id", productID)),
	)

	s.logger.InfoContext(ctx, "Item added to cart",
		slog.Int64("line_id", line.ID),
		slog.Int64("product_id", productID),
		slog.Int("quantity", line.Quantity),
		slog.Bool("merged", !created),
	)

	span.SetAttributes(
		attribute.Int64("cart.line_id", line.ID),
		attribute.Bool("cart.merged", !created),
	)
	span.SetStatus(codes.Ok, "Item added to cart")
	return dto.ToCartLineResponse(line, created), nil
}

// RemoveItem deletes a cart line whatever its quantity
func (s *CartService) RemoveItem(ctx context.Context, lineID int64) (resp *dto.ItemRemovedResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "CartService.RemoveItem")
	defer span.End()
	defer func() { countOperation(ctx, s.cartOperations, "remove", err) }()

	span.SetAttributes(attribute.Int64("cart.line_id", lineID))

	s.logger.InfoContext(ctx, "Removing item from cart",
		slog.Int64("line_id", lineID),
	)

	if err := s.cart.Delete(ctx, lineID); err != nil {
		recordFailure(ctx, span, s.logger, "Failed to remove cart line", err,
			slog.Int64("line_id", lineID),
		)
		return nil, err
	}

	span.SetStatus(codes.Ok, "Item removed from cart")
	return &dto.ItemRemovedResponse{
		ID:      lineID,
		Message: dto.MessageItemRemoved,
	}, nil
}

// UpdateQuantity sets the absolute quantity of a cart line. Zero is rejected;
// removal goes through RemoveItem.
func (s *CartService) UpdateQuantity(ctx context.Context, lineID int64, req *dto.UpdateCartItemRequest) (resp *dto.QuantityUpdatedResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "CartService.UpdateQuantity")
	defer span.End()
	defer func() { countOperation(ctx, s.cartOperations, "update", err) }()

	span.SetAttributes(attribute.Int64("cart.line_id", lineID))

	if req.Quantity == nil {
		recordFailure(ctx, span, s.logger, "Invalid quantity update", domain.ErrInvalidQuantity,
			slog.Int64("line_id", lineID),
		)
		return nil, domain.ErrInvalidQuantity
	}

	quantity := *req.Quantity
	span.SetAttributes(attribute.Int("cart.quantity", quantity))

	if err := domain.ValidateQuantity(quantity); err != nil {
		recordFailure(ctx, span, s.logger, "Invalid quantity update", err,
			slog.Int64("line_id", lineID),
			slog.Int("quantity", quantity),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "Updating cart line quantity",
		slog.Int64("line_id", lineID),
		slog.Int("quantity", quantity),
	)

	line, err := s.cart.UpdateQuantity(ctx, lineID, quantity)
	if err != nil {
		recordFailure(ctx, span, s.logger, "Failed to update cart line", err,
			slog.Int64("line_id", lineID),
		)
		return nil, err
	}

	span.SetStatus(codes.Ok, "Quantity updated")
	return &dto.QuantityUpdatedResponse{
		ID:       line.ID,
		Quantity: line.Quantity,
		Message:  dto.MessageQuantityUpdated,
	}, nil
}

// GetCart joins every line with its product and prices the cart
func (s *CartService) GetCart(ctx context.Context) (resp *dto.CartResponse, err error) {
	ctx, span := s.tracer.Start(ctx, "CartService.GetCart")
	defer span.End()
	defer func() { countOperation(ctx, s.cartOperations, "get", err) }()

	cart, err := s.priceCart(ctx)
	if err != nil {
		recordFailure(ctx, span, s.logger, "Failed to build cart", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("cart.line_count", len(cart.Items)),
		attribute.String("cart.total", cart.Total.StringFixed(domain.MoneyPlaces)),
	)

	s.logger.DebugContext(ctx, "Cart retrieved",
		slog.Int("line_count", len(cart.Items)),
		slog.String("total", cart.Total.StringFixed(domain.MoneyPlaces)),
	)

	span.SetStatus(codes.Ok, "Cart retrieved")
	return dto.ToCartResponse(cart), nil
}

func (s *CartService) priceCart(ctx context.Context) (*domain.Cart, error) {
	lines, err := s.cart.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}

	products, err := s.catalog.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}

	byID := make(map[int64]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	return domain.PriceCart(lines, byID)
}
