package service

import (
	"context"
	"log/slog"

	"github.com/mrops-br/cart-api/internal/app/dto"
	"github.com/mrops-br/cart-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ProductService handles catalog use cases
type ProductService struct {
	repo              domain.ProductRepository
	tracer            trace.Tracer
	logger            *slog.Logger
	productOperations metric.Int64Counter
}

// NewProductService creates a new product service
func NewProductService(
	repo domain.ProductRepository,
	tracer trace.Tracer,
	meter metric.Meter,
	logger *slog.Logger,
) *ProductService {
	productOperations, _ := meter.Int64Counter(
		"products.operations",
		metric.WithDescription("Total number of product operations"),
	)

	return &ProductService{
		repo:              repo,
		tracer:            tracer,
		logger:            logger,
		productOperations: productOperations,
	}
}

// GetProductByID retrieves a product by ID
func (s *ProductService) GetProductByID(ctx context.Context, id int64) (*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.GetProductByID")
	defer span.End()

	span.SetAttributes(attribute.Int64("product.id", id))

	s.logger.InfoContext(ctx, "Getting product by ID",
		slog.Int64("product_id", id),
	)

	product, err := s.repo.FindByID(ctx, id)
	countOperation(ctx, s.productOperations, "read", err)
	if err != nil {
		recordFailure(ctx, span, s.logger, "Product lookup failed", err,
			slog.Int64("product_id", id),
		)
		return nil, err
	}

	span.SetStatus(codes.Ok, "Product retrieved successfully")
	return dto.ToProductResponse(product), nil
}

// ListProducts retrieves all products ordered by id
func (s *ProductService) ListProducts(ctx context.Context) ([]*dto.ProductResponse, error) {
	ctx, span := s.tracer.Start(ctx, "ProductService.ListProducts")
	defer span.End()

	s.logger.InfoContext(ctx, "Listing all products")

	products, err := s.repo.FindAll(ctx)
	countOperation(ctx, s.productOperations, "list", err)
	if err != nil {
		recordFailure(ctx, span, s.logger, "Failed to list products", err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("product.count", len(products)))

	s.logger.InfoContext(ctx, "Products listed successfully",
		slog.Int("count", len(products)),
	)

	span.SetStatus(codes.Ok, "Products listed successfully")
	return dto.ToProductResponseList(products), nil
}
