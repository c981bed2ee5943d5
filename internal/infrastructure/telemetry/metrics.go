package telemetry

import (
	"context"
	"fmt"

	"github.com/mrops-br/cart-api/internal/infrastructure/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// newRegistry creates the Prometheus registry served on /metrics
func newRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

// newPrometheusReader exposes OTel metrics through registry
func newPrometheusReader(registry prometheus.Registerer) (metric.Reader, error) {
	exporter, err := otelprom.New(otelprom.WithRegisterer(registry))
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	return exporter, nil
}

// initMeterProvider initializes the meter provider with OTLP and Prometheus readers
func initMeterProvider(cfg *config.OTLPConfig, registry prometheus.Registerer) (*metric.MeterProvider, *grpc.ClientConn, error) {
	ctx := context.Background()

	// Create OTLP metric exporter
	conn, err := grpc.NewClient(cfg.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to create metric exporter: %w", err)
	}

	promReader, err := newPrometheusReader(registry)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter)),
		metric.WithReader(promReader),
		metric.WithResource(res),
	)

	return mp, conn, nil
}
