package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphadesk/alphadesk/internal/auth"
)

// writeEnvelope writes a backend-style response envelope.
func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	body := map[string]interface{}{
		"success": success,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	json.NewEncoder(w).Encode(body)
}

func TestClient_AttachesBearerHeader(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("access-123", "refresh-456"))

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, 200, true, "", map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/health", &out))

	assert.Equal(t, "Bearer access-123", gotAuth)
	assert.Equal(t, "ok", out["status"])
}

func TestClient_NoToken_SendsUnauthenticated(t *testing.T) {
	store := auth.NewMemoryStore()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, 200, true, "", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	require.NoError(t, client.Get(context.Background(), "/health", nil))

	assert.Empty(t, gotAuth)
}

func TestClient_RequestIDHeader_UniquePerRequest(t *testing.T) {
	store := auth.NewMemoryStore()

	var ids []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids = append(ids, r.Header.Get("X-Request-ID"))
		writeEnvelope(w, 200, true, "", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	require.NoError(t, client.Get(context.Background(), "/a", nil))
	require.NoError(t, client.Get(context.Background(), "/b", nil))

	require.Len(t, ids, 2)
	assert.NotEmpty(t, ids[0])
	assert.NotEmpty(t, ids[1])
	assert.NotEqual(t, ids[0], ids[1])
}

func TestClient_RefreshOn401_RetriesOriginalOnce(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("expired-access", "refresh-1"))

	var refreshCalls, dataCalls int32
	var retryAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			// Refresh must not carry the expired bearer.
			assert.Empty(t, r.Header.Get("Authorization"))

			writeEnvelope(w, 200, true, "", map[string]string{
				"access_token":  "fresh-access",
				"refresh_token": "refresh-2",
			})
		case "/portfolios":
			n := atomic.AddInt32(&dataCalls, 1)
			if n == 1 {
				writeEnvelope(w, 401, false, "token expired", nil)
				return
			}
			retryAuth = r.Header.Get("Authorization")
			writeEnvelope(w, 200, true, "", []map[string]string{{"id": "p1"}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	var out []map[string]string
	require.NoError(t, client.Get(context.Background(), "/portfolios", &out))

	assert.Equal(t, int32(1), refreshCalls)
	assert.Equal(t, int32(2), dataCalls)
	assert.Equal(t, "Bearer fresh-access", retryAuth)
	assert.Equal(t, "fresh-access", store.AccessToken())
	assert.Equal(t, "refresh-2", store.RefreshToken())
	require.Len(t, out, 1)
	assert.Equal(t, "p1", out[0]["id"])
}

func TestClient_RetryStillFails_NoSecondRefresh(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("expired-access", "refresh-1"))

	var refreshCalls, dataCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			atomic.AddInt32(&refreshCalls, 1)
			writeEnvelope(w, 200, true, "", map[string]string{
				"access_token":  "fresh-access",
				"refresh_token": "refresh-2",
			})
		default:
			atomic.AddInt32(&dataCalls, 1)
			writeEnvelope(w, 401, false, "still rejected", nil)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	err := client.Get(context.Background(), "/portfolios", nil)
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)

	assert.Equal(t, int32(1), refreshCalls, "exactly one refresh per request")
	assert.Equal(t, int32(2), dataCalls, "exactly one retry of the original request")
}

func TestClient_NoRefreshToken_FailsWithoutNetworkCall(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("expired-access", ""))

	var refreshCalls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			atomic.AddInt32(&refreshCalls, 1)
		}
		writeEnvelope(w, 401, false, "token expired", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)

	expired := false
	client.OnSessionExpired(func() { expired = true })

	err := client.Get(context.Background(), "/portfolios", nil)
	require.ErrorIs(t, err, ErrNoRefreshToken)

	assert.Equal(t, int32(0), refreshCalls, "refresh endpoint must not be called")
	assert.Empty(t, store.AccessToken(), "tokens must be cleared")
	assert.True(t, expired, "session-expired must fire")
}

func TestClient_RefreshRejected_ClearsTokensAndNotifies(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("expired-access", "bad-refresh"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			writeEnvelope(w, 401, false, "invalid refresh token", nil)
			return
		}
		writeEnvelope(w, 401, false, "token expired", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)

	expired := false
	client.OnSessionExpired(func() { expired = true })

	err := client.Get(context.Background(), "/portfolios", nil)
	require.Error(t, err)

	// Caller sees the refresh failure, not the original 401 message.
	assert.Contains(t, err.Error(), "token refresh failed")
	assert.Contains(t, err.Error(), "invalid refresh token")

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.True(t, expired)
}

func TestClient_EnvelopeFailure_ReturnsMessage(t *testing.T) {
	store := auth.NewMemoryStore()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, false, "portfolio not found", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	err := client.Get(context.Background(), "/portfolios/missing", nil)
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, "portfolio not found", apiErr.Message)
	assert.Equal(t, "/portfolios/missing", apiErr.Endpoint)
}

func TestClient_HTTPError_PrefersEnvelopeMessage(t *testing.T) {
	store := auth.NewMemoryStore()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 422, false, "validation failed", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	err := client.Post(context.Background(), "/orders", map[string]string{}, nil)
	require.Error(t, err)

	apiErr, ok := IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 422, apiErr.StatusCode)
	assert.Equal(t, "validation failed", apiErr.Message)
}

func TestClient_PostEncodesBody(t *testing.T) {
	store := auth.NewMemoryStore()

	var gotBody map[string]string
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, 200, true, "", nil)
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	require.NoError(t, client.Post(context.Background(), "/things", map[string]string{"name": "x"}, nil))

	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "x", gotBody["name"])
}

func TestClient_Download_UsesContentDispositionFilename(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("access-123", "refresh-456"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="q3-performance.pdf"`)
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-fake"))
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	data, filename, err := client.Download(context.Background(), "/analytics/reports/r1/download")
	require.NoError(t, err)

	assert.Equal(t, "q3-performance.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), data)
}

func TestClient_Download_RefreshesOn401(t *testing.T) {
	store := auth.NewMemoryStore()
	require.NoError(t, store.Save("expired-access", "refresh-1"))

	var downloads int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/auth/refresh" {
			writeEnvelope(w, 200, true, "", map[string]string{
				"access_token":  "fresh-access",
				"refresh_token": "refresh-2",
			})
			return
		}
		if atomic.AddInt32(&downloads, 1) == 1 {
			writeEnvelope(w, 401, false, "token expired", nil)
			return
		}
		w.Write([]byte("csv,data"))
	}))
	defer srv.Close()

	client := New(srv.URL, store)
	data, _, err := client.Download(context.Background(), "/analytics/reports/r1/download")
	require.NoError(t, err)

	assert.Equal(t, []byte("csv,data"), data)
	assert.Equal(t, int32(2), downloads)
	assert.Equal(t, "fresh-access", store.AccessToken())
}
