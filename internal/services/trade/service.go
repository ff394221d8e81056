// Package trade wraps the order, position and quote endpoints of the
// AlphaDesk API.
package trade

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// idempotencyHeader deduplicates order submissions server-side when a
// request is retried after an ambiguous failure.
const idempotencyHeader = "X-Idempotency-Key"

// Service issues trading requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates a trade service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// PlaceOrder submits an order with a fresh idempotency key.
func (s *Service) PlaceOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	var order models.Order
	headers := map[string]string{idempotencyHeader: uuid.NewString()}
	if err := s.client.DoWithHeaders(ctx, "POST", "/trades/orders", input, &order, headers); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders retrieves all orders for the current user.
func (s *Service) Orders(ctx context.Context) ([]*models.Order, error) {
	var orders []*models.Order
	if err := s.client.Get(ctx, "/trades/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder retrieves an order by ID.
func (s *Service) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := s.client.Get(ctx, "/trades/orders/"+url.PathEscape(id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder cancels a pending order.
func (s *Service) CancelOrder(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/trades/orders/"+url.PathEscape(id))
}

// Positions retrieves all open positions for the current user.
func (s *Service) Positions(ctx context.Context) ([]*models.Position, error) {
	var positions []*models.Position
	if err := s.client.Get(ctx, "/trades/positions", &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

// Quote retrieves an executable quote for a symbol.
func (s *Service) Quote(ctx context.Context, symbol string) (*models.Quote, error) {
	var quote models.Quote
	if err := s.client.Get(ctx, "/trades/quotes/"+url.PathEscape(symbol), &quote); err != nil {
		return nil, err
	}
	return &quote, nil
}

// Ensure Service implements TradeService
var _ interfaces.TradeService = (*Service)(nil)
