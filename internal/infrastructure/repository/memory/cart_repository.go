package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/mrops-br/cart-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CartRepository is an in-memory implementation of domain.CartRepository.
// A single lock serializes writers so merge-on-add never produces two lines
// for one product.
type CartRepository struct {
	mu        sync.RWMutex
	lines     map[int64]*domain.CartLine
	byProduct map[int64]int64
	nextID    int64
	tracer    trace.Tracer
	logger    *slog.Logger
}

// NewCartRepository creates an empty cart store. Line ids start at 1.
func NewCartRepository(tracer trace.Tracer, logger *slog.Logger) *CartRepository {
	return &CartRepository{
		lines:     make(map[int64]*domain.CartLine),
		byProduct: make(map[int64]int64),
		nextID:    1,
		tracer:    tracer,
		logger:    logger,
	}
}

// Merge adds quantity to the product's line or creates a new line
func (r *CartRepository) Merge(ctx context.Context, productID int64, quantity int) (*domain.CartLine, bool, error) {
	ctx, span := r.tracer.Start(ctx, "CartRepository.Merge")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("product.id", productID),
		attribute.Int("cart.quantity", quantity),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, exists := r.byProduct[productID]; exists {
		line := r.lines[id]
		if quantity > domain.MaxLineQuantity-line.Quantity {
			span.RecordError(domain.ErrQuantityTooLarge)
			span.SetStatus(codes.Error, "Quantity overflow")
			return nil, false, domain.ErrQuantityTooLarge
		}
		line.Quantity += quantity

		r.logger.InfoContext(ctx, "Cart line merged in repository",
			slog.Int64("line_id", line.ID),
			slog.Int64("product_id", productID),
			slog.Int("quantity", line.Quantity),
		)

		span.SetAttributes(attribute.Int64("cart.line_id", line.ID))
		span.SetStatus(codes.Ok, "Cart line merged")
		out := *line
		return &out, false, nil
	}

	line := &domain.CartLine{
		ID:        r.nextID,
		ProductID: productID,
		Quantity:  quantity,
	}
	r.nextID++
	r.lines[line.ID] = line
	r.byProduct[productID] = line.ID

	r.logger.InfoContext(ctx, "Cart line created in repository",
		slog.Int64("line_id", line.ID),
		slog.Int64("product_id", productID),
		slog.Int("quantity", quantity),
	)

	span.SetAttributes(attribute.Int64("cart.line_id", line.ID))
	span.SetStatus(codes.Ok, "Cart line created")
	out := *line
	return &out, true, nil
}

// FindByID retrieves a cart line by ID
func (r *CartRepository) FindByID(ctx context.Context, id int64) (*domain.CartLine, error) {
	ctx, span := r.tracer.Start(ctx, "CartRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("cart.line_id", id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	line, exists := r.lines[id]
	if !exists {
		span.RecordError(domain.ErrCartLineNotFound)
		span.SetStatus(codes.Error, "Cart line not found")
		r.logger.WarnContext(ctx, "Cart line not found", slog.Int64("line_id", id))
		return nil, domain.ErrCartLineNotFound
	}

	span.SetStatus(codes.Ok, "Cart line found")
	out := *line
	return &out, nil
}

// FindAll retrieves every cart line ordered by line id
func (r *CartRepository) FindAll(ctx context.Context) ([]*domain.CartLine, error) {
	ctx, span := r.tracer.Start(ctx, "CartRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := make([]*domain.CartLine, 0, len(r.lines))
	for _, line := range r.lines {
		out := *line
		lines = append(lines, &out)
	}
	slices.SortFunc(lines, func(a, b *domain.CartLine) int {
		return compareID(a.ID, b.ID)
	})

	span.SetAttributes(attribute.Int("cart.line_count", len(lines)))
	r.logger.DebugContext(ctx, "Cart lines retrieved from repository",
		slog.Int("count", len(lines)),
	)

	span.SetStatus(codes.Ok, "Cart lines retrieved")
	return lines, nil
}

// UpdateQuantity sets the quantity of an existing line
func (r *CartRepository) UpdateQuantity(ctx context.Context, id int64, quantity int) (*domain.CartLine, error) {
	ctx, span := r.tracer.Start(ctx, "CartRepository.UpdateQuantity")
	defer span.End()

	span.SetAttributes(
		attribute.Int64("cart.line_id", id),
		attribute.Int("cart.quantity", quantity),
	)

	r.mu.Lock()
	defer r.mu.Unlock()

	line, exists := r.lines[id]
	if !exists {
		span.RecordError(domain.ErrCartLineNotFound)
		span.SetStatus(codes.Error, "Cart line not found")
		r.logger.WarnContext(ctx, "Cart line not found", slog.Int64("line_id", id))
		return nil, domain.ErrCartLineNotFound
	}

	line.Quantity = quantity

	r.logger.InfoContext(ctx, "Cart line quantity updated in repository",
		slog.Int64("line_id", id),
		slog.Int("quantity", quantity),
	)

	span.SetStatus(codes.Ok, "Cart line updated")
	out := *line
	return &out, nil
}

// Delete removes a line regardless of its quantity
func (r *CartRepository) Delete(ctx context.Context, id int64) error {
	ctx, span := r.tracer.Start(ctx, "CartRepository.Delete")
	defer span.End()

	span.SetAttributes(attribute.Int64("cart.line_id", id))

	r.mu.Lock()
	defer r.mu.Unlock()

	line, exists := r.lines[id]
	if !exists {
		span.RecordError(domain.ErrCartLineNotFound)
		span.SetStatus(codes.Error, "Cart line not found")
		r.logger.WarnContext(ctx, "Cart line not found", slog.Int64("line_id", id))
		return domain.ErrCartLineNotFound
	}

	delete(r.lines, id)
	delete(r.byProduct, line.ProductID)

	r.logger.InfoContext(ctx, "Cart line deleted from repository",
		slog.Int64("line_id", id),
		slog.Int64("product_id", line.ProductID),
	)

	span.SetStatus(codes.Ok, "Cart line deleted")
	return nil
}
