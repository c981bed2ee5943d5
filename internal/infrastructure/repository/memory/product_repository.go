package memory

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/mrops-br/cart-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// ProductRepository is an in-memory, read-only implementation of domain.ProductRepository
type ProductRepository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewProductRepository creates a catalog seeded with products. It fails on
// invalid or duplicate entries.
func NewProductRepository(tracer trace.Tracer, logger *slog.Logger, seed []*domain.Product) (*ProductRepository, error) {
	products := make(map[int64]*domain.Product, len(seed))
	for _, product := range seed {
		if err := product.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog product %d: %w", product.ID, err)
		}
		if _, exists := products[product.ID]; exists {
			return nil, fmt.Errorf("duplicate catalog product id %d", product.ID)
		}
		p := *product
		products[p.ID] = &p
	}

	logger.Info("Catalog loaded", slog.Int("count", len(products)))

	return &ProductRepository{
		products: products,
		tracer:   tracer,
		logger:   logger,
	}, nil
}

// FindByID retrieves a product by ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		span.RecordError(domain.ErrProductNotFound)
		span.SetStatus(codes.Error, "Product not found")
		r.logger.WarnContext(ctx, "Product not found",
			slog.Int64("product_id", id),
		)
		return nil, domain.ErrProductNotFound
	}

	r.logger.DebugContext(ctx, "Product found in repository",
		slog.Int64("product_id", id),
		slog.String("product_name", product.Name),
	)

	span.SetStatus(codes.Ok, "Product found")
	p := *product
	return &p, nil
}

// FindAll retrieves all products ordered by id
func (r *ProductRepository) FindAll(ctx context.Context) ([]*domain.Product, error) {
	ctx, span := r.tracer.Start(ctx, "ProductRepository.FindAll")
	defer span.End()

	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		p := *product
		products = append(products, &p)
	}
	slices.SortFunc(products, func(a, b *domain.Product) int {
		return compareID(a.ID, b.ID)
	})

	span.SetAttributes(attribute.Int("product.count", len(products)))

	r.logger.DebugContext(ctx, "Products retrieved from repository",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products retrieved successfully")
	return products, nil
}

func compareID(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
