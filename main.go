package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mrops-br/cart-api/internal/app/service"
	"github.com/mrops-br/cart-api/internal/infrastructure/config"
	"github.com/mrops-br/cart-api/internal/infrastructure/http"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/cart-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/cart-api/internal/infrastructure/telemetry"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Initialize OpenTelemetry
	newTelemetry := telemetry.NewTelemetry
	if !cfg.OTLP.Enabled {
		newTelemetry = telemetry.NewNoOpTelemetry
	}
	telem, err := newTelemetry(&cfg.OTLP)
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}

	// Setup graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Ensure telemetry is shutdown on exit
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()
		if err := telem.Shutdown(shutdownCtx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	// Get tracer, meter, and logger instances
	tracer := telem.TracerProvider.Tracer("cart-api")
	meter := telem.MeterProvider.Meter("cart-api")
	logger := telem.Logger

	logger.Info("Starting Cart API")

	// Initialize repositories (dependency injection)
	catalog, err := memory.NewProductRepository(tracer, logger, memory.DefaultCatalog())
	if err != nil {
		logger.Error("Failed to load catalog", slog.String("error", err.Error()))
		return
	}
	cartRepo := memory.NewCartRepository(tracer, logger)

	// Initialize services
	productService := service.NewProductService(catalog, tracer, meter, logger)
	cartService := service.NewCartService(cartRepo, catalog, tracer, meter, logger)
	checkoutService := service.NewCheckoutService(tracer, meter, logger)

	// Initialize HTTP server
	server := http.NewServer(&cfg.Server, http.Handlers{
		Products: handler.NewProductHandler(productService, logger),
		Cart:     handler.NewCartHandler(cartService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
	}, logger, telem)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Server error", "error", err.Error())
			cancel()
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logger.Info("Shutting down server...")
	case <-ctx.Done():
		logger.Info("Context cancelled, shutting down...")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("Server stopped")
}
