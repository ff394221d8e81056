// Package api provides the shared authenticated HTTP client for the
// AlphaDesk backend. Every service wrapper issues requests through one
// Client instance; auth attach and refresh-on-401 live here and nowhere else.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/alphadesk/alphadesk/internal/common"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	refreshEndpoint = "/auth/refresh"
)

// Client issues JSON requests against the backend base URL, attaching the
// persisted bearer token and transparently recovering once from an expired
// access token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     interfaces.TokenStore
	logger     *common.Logger
	limiter    *rate.Limiter

	expiredMu  sync.Mutex
	expiredFns []func()
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a new backend API client. All service wrappers share one
// instance constructed here.
func New(baseURL string, tokens interfaces.TokenStore, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// OnSessionExpired registers a callback invoked when a token refresh fails
// and the session is torn down. The transport never navigates anywhere
// itself; presentation code subscribes here.
func (c *Client) OnSessionExpired(fn func()) {
	c.expiredMu.Lock()
	defer c.expiredMu.Unlock()
	c.expiredFns = append(c.expiredFns, fn)
}

func (c *Client) sessionExpired() {
	c.expiredMu.Lock()
	fns := make([]func(), len(c.expiredFns))
	copy(fns, c.expiredFns)
	c.expiredMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Get performs a GET request and decodes the envelope data into out.
func (c *Client) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.Do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPost, endpoint, body, out)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Do(ctx, http.MethodPut, endpoint, body, out)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.Do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// Do performs a JSON request with the global auth policy: bearer attach when
// a token is stored, one silent refresh-and-retry on 401. Extra headers may
// be attached via DoWithHeaders.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	return c.DoWithHeaders(ctx, method, endpoint, body, out, nil)
}

// DoWithHeaders is Do with additional request headers (e.g. idempotency keys).
func (c *Client) DoWithHeaders(ctx context.Context, method, endpoint string, body, out interface{}, headers map[string]string) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		payload = data
	}
	return c.do(ctx, method, endpoint, payload, out, headers, false)
}

// do sends the request. The retried flag marks a request that has already
// been through a refresh cycle; it is set before the retry is attempted so
// at most one refresh happens per logical request.
func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte, out interface{}, headers map[string]string, retried bool) error {
	resp, respBody, err := c.send(ctx, method, endpoint, payload, headers, true)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		if err := c.refresh(ctx); err != nil {
			c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("Token refresh failed, session expired")
			c.sessionExpired()
			// The caller sees the refresh error, not the original 401.
			return err
		}
		return c.do(ctx, method, endpoint, payload, out, headers, true)
	}

	return decodeEnvelope(resp.StatusCode, respBody, endpoint, out)
}

// send issues a single HTTP request and reads the whole response body.
func (c *Client) send(ctx context.Context, method, endpoint string, payload []byte, headers map[string]string, withAuth bool) (*http.Response, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, bodyReader)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if withAuth {
		if token := c.tokens.AccessToken(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	c.logger.Debug().Str("method", method).Str("endpoint", endpoint).Msg("AlphaDesk API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp, respBody, nil
}

// refresh exchanges the persisted refresh token for a new token pair. Any
// failure clears all persisted tokens; further recovery is up to the session
// layer.
func (c *Client) refresh(ctx context.Context) error {
	refreshToken := c.tokens.RefreshToken()
	if refreshToken == "" {
		// Fail immediately, no network call.
		if err := c.tokens.Clear(); err != nil {
			c.logger.Warn().Err(err).Msg("Failed to clear tokens")
		}
		return ErrNoRefreshToken
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	// The refresh request authenticates with the refresh token itself, never
	// the (expired) access token.
	resp, respBody, err := c.send(ctx, http.MethodPost, refreshEndpoint, payload, nil, false)
	if err != nil {
		c.clearTokens()
		return fmt.Errorf("token refresh failed: %w", err)
	}

	var pair models.TokenPair
	if err := decodeEnvelope(resp.StatusCode, respBody, refreshEndpoint, &pair); err != nil {
		c.clearTokens()
		return fmt.Errorf("token refresh failed: %w", err)
	}

	if pair.AccessToken == "" {
		c.clearTokens()
		return fmt.Errorf("token refresh failed: empty access token in response")
	}

	if err := c.tokens.Save(pair.AccessToken, pair.RefreshToken); err != nil {
		return fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}

	c.logger.Debug().Msg("Access token refreshed")
	return nil
}

func (c *Client) clearTokens() {
	if err := c.tokens.Clear(); err != nil {
		c.logger.Warn().Err(err).Msg("Failed to clear tokens")
	}
}

// Download fetches a binary resource (report files) under the same auth and
// refresh policy as JSON requests. Returns the body and the filename from
// Content-Disposition when present.
func (c *Client) Download(ctx context.Context, endpoint string) ([]byte, string, error) {
	return c.download(ctx, endpoint, false)
}

func (c *Client) download(ctx context.Context, endpoint string, retried bool) ([]byte, string, error) {
	resp, respBody, err := c.send(ctx, http.MethodGet, endpoint, nil, nil, true)
	if err != nil {
		return nil, "", err
	}

	if resp.StatusCode == http.StatusUnauthorized && !retried {
		if err := c.refresh(ctx); err != nil {
			c.sessionExpired()
			return nil, "", err
		}
		return c.download(ctx, endpoint, true)
	}

	if resp.StatusCode >= 400 {
		return nil, "", envelopeError(resp.StatusCode, respBody, endpoint)
	}

	filename := path.Base(endpoint)
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				filename = name
			}
		}
	}

	return respBody, filename, nil
}

// decodeEnvelope validates the response envelope and unmarshals its data.
func decodeEnvelope(statusCode int, respBody []byte, endpoint string, out interface{}) error {
	if statusCode >= 400 {
		return envelopeError(statusCode, respBody, endpoint)
	}

	var env models.Envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		return &Error{
			StatusCode: statusCode,
			Message:    env.Message,
			Endpoint:   endpoint,
		}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}

	return nil
}

// envelopeError builds an *Error from a failed response, preferring the
// envelope message when the body parses.
func envelopeError(statusCode int, respBody []byte, endpoint string) error {
	var env models.Envelope
	if err := json.Unmarshal(respBody, &env); err == nil && env.Message != "" {
		return &Error{StatusCode: statusCode, Message: env.Message, Endpoint: endpoint}
	}
	return &Error{StatusCode: statusCode, Message: string(respBody), Endpoint: endpoint}
}
