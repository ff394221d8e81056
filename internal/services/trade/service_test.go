package trade

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/auth"
	"github.com/alphadesk/alphadesk/internal/models"
)

func newTestService(t *testing.T, handler http.HandlerFunc) (*Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))
	return New(api.New(srv.URL, store)), srv
}

func TestPlaceOrder_SendsIdempotencyKey(t *testing.T) {
	var keys []string
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/trades/orders", r.URL.Path)
		keys = append(keys, r.Header.Get("X-Idempotency-Key"))

		var input models.OrderInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"id":     "o1",
				"symbol": input.Symbol,
				"side":   input.Side,
				"units":  input.Units,
				"status": "pending",
			},
		})
	})

	input := models.OrderInput{PortfolioID: "p1", Symbol: "BHP", Side: "buy", Type: "market", Units: 100}

	order, err := svc.PlaceOrder(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "o1", order.ID)
	assert.Equal(t, "pending", order.Status)

	_, err = svc.PlaceOrder(context.Background(), input)
	require.NoError(t, err)

	require.Len(t, keys, 2)
	assert.NotEmpty(t, keys[0])
	assert.NotEqual(t, keys[0], keys[1], "each submission gets a fresh idempotency key")
}

func TestQuote_EscapesSymbol(t *testing.T) {
	var gotPath string
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"symbol": "BHP.AX", "bid": 42.1, "ask": 42.2, "last": 42.15},
		})
	})

	q, err := svc.Quote(context.Background(), "BHP.AX")
	require.NoError(t, err)
	assert.Equal(t, "/trades/quotes/BHP.AX", gotPath)
	assert.Equal(t, 42.1, q.Bid)
}

func TestPositions_DecodesList(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/trades/positions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"symbol": "BHP", "units": 100.0, "avg_price": 40.0, "market_price": 42.0, "market_value": 4200.0, "unrealized_pnl": 200.0},
			},
		})
	})

	positions, err := svc.Positions(context.Background())
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, "BHP", positions[0].Symbol)
	assert.Equal(t, 200.0, positions[0].UnrealizedPnL)
}

func TestCancelOrder_SurfacesEnvelopeFailure(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "order already filled",
		})
	})

	err := svc.CancelOrder(context.Background(), "o1")
	require.Error(t, err)

	apiErr, ok := api.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "order already filled", apiErr.Message)
}
