package service

import (
	"context"
	"log/slog"

	"github.com/mrops-br/cart-api/internal/domain"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// recordFailure marks the span as failed and logs err. Client errors are
// logged at warn, internal faults at error.
func recordFailure(ctx context.Context, span trace.Span, logger *slog.Logger, msg string, err error, attrs ...any) {
	span.RecordError(err)
	span.SetStatus(codes.Error, msg)

	level := slog.LevelWarn
	if domain.KindOf(err) == domain.KindInternal {
		level = slog.LevelError
	}
	logger.Log(ctx, level, msg, append(attrs, slog.String("error", err.Error()))...)
}

// resultOf maps an operation outcome to the "result" metric attribute
func resultOf(err error) string {
	if err == nil {
		return "success"
	}
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return "invalid"
	case domain.KindNotFound:
		return "not_found"
	default:
		return "failure"
	}
}

func countOperation(ctx context.Context, counter metric.Int64Counter, operation string, err error) {
	counter.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("operation", operation),
			attribute.String("result", resultOf(err)),
		),
	)
}
