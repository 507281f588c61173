package http

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/texnokross/texnokross/internal/infrastructure/config"
	"github.com/texnokross/texnokross/internal/infrastructure/recordstore"
	sharedConfig "github.com/texnokross/texnokross/internal/shared/config"
	"github.com/texnokross/texnokross/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		Server: sharedConfig.ServerConfig{FrontendURL: "http://shop.local"},
		Payme: sharedConfig.PaymeConfig{
			MerchantID:      "merchant-1",
			SecretKeyTest:   "test-key",
			TestMode:        true,
			CheckoutURL:     "https://checkout.paycom.uz",
			CheckoutURLTest: "https://test.paycom.uz",
			OrderTTLHours:   12,
		},
	}
}

func do(t *testing.T, h http.Handler, method, path string, body any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestContainerEndToEnd(t *testing.T) {
	c := NewContainer(recordstore.NewMemoryStore(), nil, testConfig(), logger.NewNop())
	engine := c.Engine()
	assert.True(t, c.PaymentConfigured())

	w := do(t, engine, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(t, engine, http.MethodPost, "/api/orders", map[string]any{
		"customer": map[string]any{"name": "Aziz", "phone": "+998901234567", "delivery_cost": 0},
		"items":    []map[string]any{{"id": "p1", "name": "Kettle", "price": 100000, "quantity": 1}},
		"total":    100000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	orderID := created.Data.ID
	require.NotEmpty(t, orderID)

	w = do(t, engine, http.MethodPost, "/api/create-payment", map[string]any{"order_id": orderID, "amount": 100000}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://test.paycom.uz/")

	auth := map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte("Paycom:test-key")),
	}
	rpc := func(method string, params map[string]any) map[string]any {
		w := do(t, engine, http.MethodPost, "/api/payme", map[string]any{"id": 1, "method": method, "params": params}, auth)
		require.Equal(t, http.StatusOK, w.Code)
		var out map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Nil(t, out["error"], w.Body.String())
		return out["result"].(map[string]any)
	}

	account := map[string]any{"order_id": orderID}
	assert.Equal(t, true, rpc("CheckPerformTransaction", map[string]any{"amount": 10000000, "account": account})["allow"])
	assert.EqualValues(t, 1, rpc("CreateTransaction", map[string]any{
		"id": "payme-1", "time": 1700000000000, "amount": 10000000, "account": account,
	})["state"])
	assert.EqualValues(t, 2, rpc("PerformTransaction", map[string]any{"id": "payme-1"})["state"])

	w = do(t, engine, http.MethodGet, "/api/payment/callback?order_id="+orderID, nil, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://shop.local/?payment_status=paid&order_id="+orderID, w.Header().Get("Location"))

	w = do(t, engine, http.MethodPost, "/api/orders/"+orderID+"/delivered", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, engine, http.MethodGet, "/api/orders/"+orderID, nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"delivered"`)
}

func TestContainerAcceptsStorefrontCartPayload(t *testing.T) {
	c := NewContainer(recordstore.NewMemoryStore(), nil, testConfig(), logger.NewNop())

	// Shape posted by the storefront cart: camelCase delivery fields and
	// item prices that are already line totals.
	w := do(t, c.Engine(), http.MethodPost, "/api/orders", map[string]any{
		"customer": map[string]any{
			"name":         "Aziz",
			"phone":        "+998 90 123 45 67",
			"comment":      "call first",
			"deliveryType": "paid",
			"deliveryCost": 20000,
			"city":         "Toshkent",
		},
		"items": []map[string]any{
			{"id": "p1", "name": "Kettle", "price": 100000, "quantity": 2, "image_url": "https://cdn.local/k.png"},
		},
		"total": 120000,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Success bool `json:"success"`
		Order   struct {
			ID       string `json:"id"`
			Total    int64  `json:"total"`
			Customer struct {
				DeliveryCost int64  `json:"delivery_cost"`
				DeliveryType string `json:"delivery_type"`
			} `json:"customer"`
		} `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Order.ID)
	assert.EqualValues(t, 120000, created.Order.Total)
	assert.EqualValues(t, 20000, created.Order.Customer.DeliveryCost)
	assert.Equal(t, "paid", created.Order.Customer.DeliveryType)
}

func TestContainerWrongProviderSecret(t *testing.T) {
	cfg := testConfig()
	cfg.Payme.SecretKey = "prod-key"
	engine := NewContainer(recordstore.NewMemoryStore(), nil, cfg, logger.NewNop()).Engine()

	// The production key is not valid while test mode is on.
	auth := map[string]string{
		"Authorization": "Basic " + base64.StdEncoding.EncodeToString([]byte("Paycom:prod-key")),
	}
	w := do(t, engine, http.MethodPost, "/api/payme", map[string]any{"id": 1, "method": "CheckTransaction", "params": map[string]any{"id": "x"}}, auth)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "-32504")
}

func TestContainerPaymentNotConfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Payme.MerchantID = ""
	c := NewContainer(recordstore.NewMemoryStore(), nil, cfg, logger.NewNop())
	assert.False(t, c.PaymentConfigured())

	w := do(t, c.Engine(), http.MethodPost, "/api/create-payment", map[string]any{"order_id": "o", "amount": 1}, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestContainerRateLimitsOrderCreation(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cfg := testConfig()
	cfg.RateLimit = sharedConfig.RateLimitConfig{Enabled: true, Requests: 1, WindowSeconds: 60}
	engine := NewContainer(recordstore.NewMemoryStore(), client, cfg, logger.NewNop()).Engine()

	// Invalid bodies still count against the budget.
	assert.Equal(t, http.StatusBadRequest, do(t, engine, http.MethodPost, "/api/orders", map[string]any{}, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, engine, http.MethodPost, "/api/orders", map[string]any{}, nil).Code)

	// The provider endpoint is not limited.
	w := do(t, engine, http.MethodPost, "/api/payme", map[string]any{"id": 1, "method": "CheckTransaction"}, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
