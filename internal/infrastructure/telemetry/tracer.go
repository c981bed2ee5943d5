package telemetry

import (
	"context"
	"fmt"

	"github.com/mrops-br/cart-api/internal/infrastructure/config"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// newResource describes this service to the exporters
func newResource(ctx context.Context, cfg *config.OTLPConfig) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion("1.0.0"),
			semconv.DeploymentEnvironment(cfg.Environment),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// initTracerProvider initializes the OpenTelemetry tracer provider with an OTLP gRPC exporter
func initTracerProvider(cfg *config.OTLPConfig) (*sdktrace.TracerProvider, *grpc.ClientConn, error) {
	ctx := context.Background()

	conn, err := grpc.NewClient(cfg.Endpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create gRPC connection: %w", err)
	}

	exporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		conn.Close()
		return nil, nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}

	res, err := newResource(ctx, cfg)
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	return tp, conn, nil
}
