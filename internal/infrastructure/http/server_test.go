package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mrops-br/cart-api/internal/app/dto"
	"github.com/mrops-br/cart-api/internal/app/service"
	"github.com/mrops-br/cart-api/internal/infrastructure/config"
	apihttp "github.com/mrops-br/cart-api/internal/infrastructure/http"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/handler"
	"github.com/mrops-br/cart-api/internal/infrastructure/http/response"
	"github.com/mrops-br/cart-api/internal/infrastructure/repository/memory"
	"github.com/mrops-br/cart-api/internal/infrastructure/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	telem, err := telemetry.NewNoOpTelemetry(&config.OTLPConfig{
		ServiceName: "cart-api-test",
		Environment: "test",
		LogLevel:    "error",
	})
	require.NoError(t, err)
	telem.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	t.Cleanup(func() {
		_ = telem.TracerProvider.Shutdown(context.Background())
	})

	tracer := telem.TracerProvider.Tracer("test")
	meter := telem.MeterProvider.Meter("test")
	logger := telem.Logger

	catalog, err := memory.NewProductRepository(tracer, logger, memory.DefaultCatalog())
	require.NoError(t, err)
	cartRepo := memory.NewCartRepository(tracer, logger)

	server := apihttp.NewServer(&config.ServerConfig{
		APIPrefix:       "/api",
		AllowedOrigins:  []string{"*"},
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		ShutdownTimeout: time.Second,
	}, apihttp.Handlers{
		Products: handler.NewProductHandler(service.NewProductService(catalog, tracer, meter, logger), logger),
		Cart:     handler.NewCartHandler(service.NewCartService(cartRepo, catalog, tracer, meter, logger), logger),
		Checkout: handler.NewCheckoutHandler(service.NewCheckoutService(tracer, meter, logger), logger),
	}, logger, telem)

	ts := httptest.NewServer(server.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, ts *httptest.Server, method, path, body string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestServer_CartFlow(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/cart", `{"productId":1,"quantity":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	added := decode[dto.CartLineResponse](t, resp)
	assert.Equal(t, dto.CartLineResponse{ID: 1, ProductID: 1, Quantity: 1, Message: dto.MessageItemAdded}, added)

	resp = do(t, ts, http.MethodPost, "/api/cart", `{"productId":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	merged := decode[dto.CartLineResponse](t, resp)
	assert.Equal(t, 3, merged.Quantity)
	assert.Equal(t, int64(1), merged.ID)

	resp = do(t, ts, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart := decode[dto.CartResponse](t, resp)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1), cart.Items[0].LineID)
	assert.Equal(t, "Wireless Headphones", cart.Items[0].Name)
	assert.Equal(t, 79.99, cart.Items[0].Price)
	assert.Equal(t, 239.97, cart.Items[0].Subtotal)
	assert.Equal(t, 239.97, cart.Total)

	resp = do(t, ts, http.MethodPut, "/api/cart/1", `{"quantity":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.QuantityUpdatedResponse](t, resp)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, 1, updated.Quantity)

	resp = do(t, ts, http.MethodDelete, "/api/cart/1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	removed := decode[dto.ItemRemovedResponse](t, resp)
	assert.Equal(t, int64(1), removed.ID)

	resp = do(t, ts, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart = decode[dto.CartResponse](t, resp)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
}

func TestServer_EmptyCartShape(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[],"total":0}`, string(raw))
}

func TestServer_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
		wantError  string
	}{
		{"add missing productId", http.MethodPost, "/api/cart", `{"quantity":1}`, http.StatusBadRequest, "Invalid productId"},
		{"add zero quantity", http.MethodPost, "/api/cart", `{"productId":1,"quantity":0}`, http.StatusBadRequest, "Invalid quantity"},
		{"add fractional quantity", http.MethodPost, "/api/cart", `{"productId":1,"quantity":1.5}`, http.StatusBadRequest, ""},
		{"add string quantity", http.MethodPost, "/api/cart", `{"productId":1,"quantity":"2"}`, http.StatusBadRequest, ""},
		{"add malformed body", http.MethodPost, "/api/cart", `{`, http.StatusBadRequest, ""},
		{"add unknown product", http.MethodPost, "/api/cart", `{"productId":99,"quantity":1}`, http.StatusNotFound, "Product not found"},
		{"update zero quantity", http.MethodPut, "/api/cart/1", `{"quantity":0}`, http.StatusBadRequest, "Invalid quantity"},
		{"update unknown line", http.MethodPut, "/api/cart/42", `{"quantity":2}`, http.StatusNotFound, "Cart item not found"},
		{"update non-integer id", http.MethodPut, "/api/cart/abc", `{"quantity":2}`, http.StatusNotFound, "Cart item not found"},
		{"update bad quantity on bad id", http.MethodPut, "/api/cart/abc", `{"quantity":-1}`, http.StatusBadRequest, "Invalid quantity"},
		{"delete unknown line", http.MethodDelete, "/api/cart/42", "", http.StatusNotFound, "Cart item not found"},
		{"product unknown", http.MethodGet, "/api/products/42", "", http.StatusNotFound, "Product not found"},
		{"checkout empty", http.MethodPost, "/api/checkout", `{"cartItems":[],"name":"Ada","email":"ada@example.com"}`, http.StatusBadRequest, "Cart is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)

			resp := do(t, ts, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			body := decode[response.ErrorResponse](t, resp)
			assert.NotEmpty(t, body.Error)
			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, body.Error)
			}
		})
	}
}

func TestServer_FailedAddLeavesCartUnchanged(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/cart", `{"productId":2,"quantity":1}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, body := range []string{`{"productId":77,"quantity":1}`, `{"productId":2,"quantity":-1}`} {
		resp = do(t, ts, http.MethodPost, "/api/cart", body)
		require.NotEqual(t, http.StatusOK, resp.StatusCode)
	}

	resp = do(t, ts, http.MethodGet, "/api/cart", "")
	cart := decode[dto.CartResponse](t, resp)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 199.99, cart.Total)
}

func TestServer_Products(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	products := decode[[]dto.ProductResponse](t, resp)
	require.Len(t, products, 8)
	assert.Equal(t, dto.ProductResponse{
		ID:          1,
		Name:        "Wireless Headphones",
		Price:       79.99,
		Image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300",
		Description: "Premium sound quality",
	}, products[0])

	resp = do(t, ts, http.MethodGet, "/api/products/3", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	product := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Laptop Stand", product.Name)
}

func TestServer_Checkout(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodPost, "/api/cart", `{"productId":4,"quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, ts, http.MethodGet, "/api/cart", "")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := `{"cartItems":` + string(mustField(t, raw, "items")) + `,"name":"Linus","email":"linus@example.com"}`
	resp = do(t, ts, http.MethodPost, "/api/checkout", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	receipt := decode[dto.ReceiptResponse](t, resp)
	assert.NotEmpty(t, receipt.OrderID)
	assert.Equal(t, "Linus", receipt.CustomerName)
	assert.Equal(t, "linus@example.com", receipt.CustomerEmail)
	assert.False(t, receipt.Timestamp.IsZero())
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, 259.98, receipt.Total)

	// checkout does not clear the cart
	resp = do(t, ts, http.MethodGet, "/api/cart", "")
	cart := decode[dto.CartResponse](t, resp)
	assert.Len(t, cart.Items, 1)
}

func TestServer_HealthAndMetrics(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, ts, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// produce at least one service metric
	do(t, ts, http.MethodGet, "/api/products", "")

	resp = do(t, ts, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "go_goroutines")
	assert.Contains(t, string(raw), "products_operations")
}

func TestServer_CORS(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, ts.URL+"/api/cart", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func mustField(t *testing.T, raw []byte, field string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &m))
	v, ok := m[field]
	require.True(t, ok, "missing field %q", field)
	return v
}
