package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mrops-br/cart-api/internal/infrastructure/config"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/middleware"
	"github.com/mrops-br/cart-api/internal/infrastructure/telemetry"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
)

// Handlers groups the HTTP handlers mounted by the server
type Handlers struct {
	Products *handler.ProductHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

// Server represents the HTTP server
type Server struct {
	router    *chi.Mux
	config    *config.ServerConfig
	handlers  Handlers
	logger    *slog.Logger
	telemetry *telemetry.Telemetry
	http      *http.Server
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.ServerConfig,
	handlers Handlers,
	logger *slog.Logger,
	telem *telemetry.Telemetry,
) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		config:    cfg,
		handlers:  handlers,
		logger:    logger,
		telemetry: telem,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// setupMiddleware configures the middleware chain
func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	// Structured JSON logging middleware (replaces chimiddleware.Logger)
	s.router.Use(middleware.StructuredLogger(s.logger))
	s.router.Use(chimiddleware.Recoverer)

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		MaxAge:         300,
	}))

	// Add HTTP route to context so all logs include it automatically
	s.router.Use(middleware.HTTPRouteContext())

	meter := s.telemetry.MeterProvider.Meter("cart-api")
	s.router.Use(middleware.ActiveRequestsMiddleware(meter))
}

// setupRoutes configures the API routes
func (s *Server) setupRoutes() {
	s.router.Route(s.config.APIPrefix, func(api chi.Router) {
		api.Route("/products", func(r chi.Router) {
			r.Get("/", s.handlers.Products.ListProducts)
			r.Get("/{id}", s.handlers.Products.GetProduct)
		})

		api.Route("/cart", func(r chi.Router) {
			r.Get("/", s.handlers.Cart.GetCart)
			r.Post("/", s.handlers.Cart.AddItem)
			r.Put("/{id}", s.handlers.Cart.UpdateQuantity)
			r.Delete("/{id}", s.handlers.Cart.RemoveItem)
		})

		api.Post("/checkout", s.handlers.Checkout.Checkout)
	})

	// Health check endpoint
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint - exposes OpenTelemetry metrics
	s.router.Method(http.MethodGet, "/metrics", s.telemetry.MetricsHandler())
}

// Handler returns the router wrapped with otelhttp for automatic HTTP metrics and tracing
func (s *Server) Handler() http.Handler {
	return otelhttp.NewHandler(s.router, "http-server",
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithTracerProvider(s.telemetry.TracerProvider),
		otelhttp.WithMeterProvider(s.telemetry.MeterProvider),
		// Add route pattern to metrics attributes
		otelhttp.WithMetricAttributesFn(func(r *http.Request) []attribute.KeyValue {
			return []attribute.KeyValue{
				attribute.String("http.route", middleware.RoutePattern(r)),
			}
		}),
	)
}

// Start starts the HTTP server and blocks until it stops.
// It returns nil after a graceful Shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		slog.String("address", s.http.Addr),
		slog.String("api_prefix", s.config.APIPrefix),
	)

	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
