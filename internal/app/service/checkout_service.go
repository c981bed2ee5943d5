package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/mrops-br/cart-api/internal/app/dto"
	"github.com/mrops-br/cart-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// CheckoutService turns a priced cart snapshot into a receipt. It neither
// persists the receipt nor clears the cart.
type CheckoutService struct {
	tracer          trace.Tracer
	logger          *slog.Logger
	now             func() time.Time
	receiptsCounter metric.Int64Counter
	revenueCounter  metric.Float64Counter
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(tracer trace.Tracer, meter metric.Meter, logger *slog.Logger) *CheckoutService {
	receiptsCounter, _ := meter.Int64Counter(
		"checkout.receipts.total",
		metric.WithDescription("Total number of checkout attempts"),
	)

	revenueCounter, _ := meter.Float64Counter(
		"checkout.revenue",
		metric.WithDescription("Sum of receipt totals"),
		metric.WithUnit("{currency}"),
	)

	return &CheckoutService{
		tracer:          tracer,
		logger:          logger,
		now:             time.Now,
		receiptsCounter: receiptsCounter,
		revenueCounter:  revenueCounter,
	}
}

// Checkout validates the snapshot and customer and returns a receipt
func (s *CheckoutService) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.ReceiptResponse, error) {
	ctx, span := s.tracer.Start(ctx, "CheckoutService.Checkout")
	defer span.End()

	span.SetAttributes(attribute.Int("checkout.item_count", len(req.CartItems)))

	s.logger.InfoContext(ctx, "Processing checkout",
		slog.Int("item_count", len(req.CartItems)),
	)

	receipt, err := s.buildReceipt(req)
	s.receiptsCounter.Add(ctx, 1,
		metric.WithAttributes(attribute.String("result", resultOf(err))),
	)
	if err != nil {
		recordFailure(ctx, span, s.logger, "Checkout rejected", err)
		return nil, err
	}

	s.revenueCounter.Add(ctx, receipt.Total.InexactFloat64())

	span.SetAttributes(
		attribute.String("order.id", receipt.OrderID),
		attribute.String("order.total", receipt.Total.StringFixed(domain.MoneyPlaces)),
	)

	s.logger.InfoContext(ctx, "Checkout completed",
		slog.String("order_id", receipt.OrderID),
		slog.String("total", receipt.Total.StringFixed(domain.MoneyPlaces)),
	)

	span.SetStatus(codes.Ok, "Checkout completed")
	return dto.ToReceiptResponse(receipt), nil
}

func (s *CheckoutService) buildReceipt(req *dto.CheckoutRequest) (*domain.Receipt, error) {
	items, err := dto.ToReceiptItems(req.CartItems)
	if err != nil {
		return nil, err
	}
	return domain.NewReceipt(req.Name, req.Email, items, s.now())
}
