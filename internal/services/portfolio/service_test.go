package portfolio

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

func newTestService(t *testing.T, handler http.HandlerFunc) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(api.New(srv.URL, auth.NewMemoryStore()))
}

func ok(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": data})
}

func TestList_DecodesPortfolios(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/portfolios", r.URL.Path)
		ok(w, []map[string]interface{}{
			{"id": "p1", "name": "Growth", "currency": "AUD", "market_value": 125000.0, "total_return_pct": 12.5},
			{"id": "p2", "name": "Income", "currency": "USD", "market_value": 80000.0, "total_return_pct": 4.1},
		})
	})

	portfolios, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, "Growth", portfolios[0].Name)
	assert.Equal(t, 80000.0, portfolios[1].MarketValue)
}

func TestGet_PathIncludesID(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/portfolios/p1", r.URL.Path)
		ok(w, map[string]interface{}{
			"id": "p1", "name": "Growth",
			"holdings": []map[string]interface{}{
				{"symbol": "BHP", "units": 100.0, "market_value": 4200.0},
			},
		})
	})

	p, err := svc.Get(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, p.Holdings, 1)
	assert.Equal(t, "BHP", p.Holdings[0].Symbol)
}

func TestAddTransaction_PostsToPortfolioPath(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/portfolios/p1/transactions", r.URL.Path)

		var input models.TransactionInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "buy", input.Type)

		ok(w, map[string]interface{}{"id": "tx1", "portfolio_id": "p1", "type": input.Type, "amount": input.Amount})
	})

	tx, err := svc.AddTransaction(context.Background(), "p1", models.TransactionInput{
		Type: "buy", Symbol: "BHP", Units: 100, Price: 42, Amount: 4200,
	})
	require.NoError(t, err)
	assert.Equal(t, "tx1", tx.ID)
}

func TestDelete_UsesDeleteMethod(t *testing.T) {
	var gotMethod string
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		ok(w, nil)
	})

	require.NoError(t, svc.Delete(context.Background(), "p1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
}
