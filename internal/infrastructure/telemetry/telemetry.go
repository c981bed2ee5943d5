package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mrops-br/cart-api/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
)

// Telemetry holds all OpenTelemetry components
type Telemetry struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *metric.MeterProvider
	Logger         *slog.Logger

	registry *prometheus.Registry
	conns    []*grpc.ClientConn
}

// NewTelemetry initializes all OpenTelemetry components
func NewTelemetry(cfg *config.OTLPConfig) (*Telemetry, error) {
	// Initialize logger first for debugging
	logger := initLogger(cfg)

	logger.Info("Initializing OpenTelemetry",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("service_name", cfg.ServiceName),
	)

	tp, traceConn, err := initTracerProvider(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracer provider: %w", err)
	}

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	logger.Info("Tracer provider initialized successfully")

	// Meter provider with DUAL exporters (OTLP + Prometheus)
	registry := newRegistry()
	mp, metricConn, err := initMeterProvider(cfg, registry)
	if err != nil {
		_ = tp.Shutdown(context.Background())
		traceConn.Close()
		return nil, fmt.Errorf("failed to initialize meter provider: %w", err)
	}

	otel.SetMeterProvider(mp)
	logger.Info("Meter provider initialized successfully (OTLP + Prometheus exporters)")

	return &Telemetry{
		TracerProvider: tp,
		MeterProvider:  mp,
		Logger:         logger,
		registry:       registry,
		conns:          []*grpc.ClientConn{traceConn, metricConn},
	}, nil
}

// NewNoOpTelemetry creates a telemetry instance that exports nothing over
// OTLP. Spans stay local and metrics are still served on /metrics.
func NewNoOpTelemetry(cfg *config.OTLPConfig) (*Telemetry, error) {
	logger := newJSONLogger(cfg)

	tp := sdktrace.NewTracerProvider()

	registry := newRegistry()
	promReader, err := newPrometheusReader(registry)
	if err != nil {
		return nil, err
	}
	mp := metric.NewMeterProvider(metric.WithReader(promReader))

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)

	logger.Info("Telemetry initialized in no-op mode (export disabled)")

	return &Telemetry{
		TracerProvider: tp,
		MeterProvider:  mp,
		Logger:         logger,
		registry:       registry,
	}, nil
}

// MetricsHandler serves the Prometheus registry
func (t *Telemetry) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{Registry: t.registry})
}

// Shutdown gracefully shuts down all telemetry components
func (t *Telemetry) Shutdown(ctx context.Context) error {
	t.Logger.Info("Shutting down OpenTelemetry")

	var errs []error
	if err := t.TracerProvider.Shutdown(ctx); err != nil {
		t.Logger.Error("Failed to shutdown tracer provider", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if err := t.MeterProvider.Shutdown(ctx); err != nil {
		t.Logger.Error("Failed to shutdown meter provider", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	for _, conn := range t.conns {
		if err := conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	t.Logger.Info("OpenTelemetry shutdown successfully")
	return nil
}
