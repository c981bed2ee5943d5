package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mrops-br/cart-api/internal/domain"
	"github.com/mrops-br/cart-api/internal/infrastructure/repository/memory"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

var (
	testTracer = tracenoop.NewTracerProvider().Tracer("test")
	testMeter  = metricnoop.NewMeterProvider().Meter("test")
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func newCatalog(t *testing.T) *memory.ProductRepository {
	t.Helper()
	catalog, err := memory.NewProductRepository(testTracer, testLogger, memory.DefaultCatalog())
	require.NoError(t, err)
	return catalog
}

func newCartService(t *testing.T) (*CartService, *memory.CartRepository) {
	t.Helper()
	repo := memory.NewCartRepository(testTracer, testLogger)
	return NewCartService(repo, newCatalog(t), testTracer, testMeter, testLogger), repo
}

func ptr[T any](v T) *T {
	return &v
}

// brokenCatalog resolves products for adds but has lost them for listing
type brokenCatalog struct {
	domain.ProductRepository
}

func (brokenCatalog) FindAll(context.Context) ([]*domain.Product, error) {
	return nil, nil
}
