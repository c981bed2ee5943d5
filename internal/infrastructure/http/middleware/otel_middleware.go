package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mrops-br/cart-api/internal/infrastructure/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// RoutePattern returns the chi route pattern of r, falling back to the URL path
func RoutePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return r.URL.Path
}

// ActiveRequestsMiddleware tracks active HTTP requests using OpenTelemetry metrics
// This middleware should be registered AFTER routing middleware to have access to route patterns
func ActiveRequestsMiddleware(meter metric.Meter) func(next http.Handler) http.Handler {
	activeRequests, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of active HTTP server requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		// If metric creation fails, return a pass-through middleware
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			wrapper := &routeAwareWriter{
				ResponseWriter: w,
				request:        r,
				activeRequests: activeRequests,
			}

			next.ServeHTTP(wrapper, r)

			// Ensure decrement happens even if Write/WriteHeader were never called
			wrapper.ensureDecrement()
		})
	}
}

// routeAwareWriter captures the route and tracks active requests
type routeAwareWriter struct {
	http.ResponseWriter
	request        *http.Request
	activeRequests metric.Int64UpDownCounter
	attrs          []attribute.KeyValue
	incrementDone  bool
	decrementDone  bool
}

func (w *routeAwareWriter) WriteHeader(statusCode int) {
	w.incrementIfNeeded()
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *routeAwareWriter) Write(b []byte) (int, error) {
	w.incrementIfNeeded()
	return w.ResponseWriter.Write(b)
}

func (w *routeAwareWriter) incrementIfNeeded() {
	if w.incrementDone {
		return
	}
	w.incrementDone = true

	// Attributes are fixed at increment so the decrement matches exactly
	w.attrs = []attribute.KeyValue{
		attribute.String("http.request.method", w.request.Method),
		attribute.String("http.route", RoutePattern(w.request)),
		attribute.String("server.address", w.request.Host),
	}

	w.activeRequests.Add(w.request.Context(), 1, metric.WithAttributes(w.attrs...))
}

func (w *routeAwareWriter) ensureDecrement() {
	if w.decrementDone {
		return
	}
	w.decrementDone = true

	w.incrementIfNeeded()
	w.activeRequests.Add(w.request.Context(), -1, metric.WithAttributes(w.attrs...))
}

// HTTPRouteContext adds the HTTP route pattern to the request context
// This allows all logs during request processing to include the http.route attribute
func HTTPRouteContext() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := telemetry.WithHTTPRoute(r.Context(), RoutePattern(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// StructuredLogger creates a structured JSON logging middleware
// This replaces Chi's default logger to maintain consistent JSON log format
func StructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)

			span := trace.SpanFromContext(r.Context())
			spanCtx := span.SpanContext()

			attrs := []any{
				slog.String("http.request.method", r.Method),
				slog.String("http.route", RoutePattern(r)),
				slog.String("url.path", r.URL.Path),
				slog.String("url.query", r.URL.RawQuery),
				slog.Int("http.response.status_code", ww.Status()),
				slog.Int("http.response.body.size", ww.BytesWritten()),
				slog.String("duration", duration.String()),
				slog.Float64("duration_ms", float64(duration.Milliseconds())),
				slog.String("client.address", r.RemoteAddr),
				slog.String("user_agent", r.UserAgent()),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}

			if spanCtx.IsValid() {
				attrs = append(attrs,
					slog.String("trace_id", spanCtx.TraceID().String()),
					slog.String("span_id", spanCtx.SpanID().String()),
				)
			}

			// Log at appropriate level based on status code
			logLevel := slog.LevelInfo
			if ww.Status() >= 500 {
				logLevel = slog.LevelError
			} else if ww.Status() >= 400 {
				logLevel = slog.LevelWarn
			}

			logger.Log(r.Context(), logLevel, "HTTP request completed", attrs...)
		})
	}
}
