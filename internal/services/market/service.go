// Package market wraps the market-data endpoints of the AlphaDesk API.
package market

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
	"github.com/alphadesk/alphadesk/internal/poller"
)

// Service issues market-data requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates a market-data service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// Price retrieves the latest price for a symbol.
func (s *Service) Price(ctx context.Context, symbol string) (*models.PriceTick, error) {
	var tick models.PriceTick
	if err := s.client.Get(ctx, "/market/price/"+url.PathEscape(symbol), &tick); err != nil {
		return nil, err
	}
	return &tick, nil
}

// Prices retrieves the latest prices for a batch of symbols.
func (s *Service) Prices(ctx context.Context, symbols []string) ([]*models.PriceTick, error) {
	var ticks []*models.PriceTick
	path := "/market/prices?symbols=" + url.QueryEscape(strings.Join(symbols, ","))
	if err := s.client.Get(ctx, path, &ticks); err != nil {
		return nil, err
	}
	return ticks, nil
}

// Candles retrieves OHLCV bars for a symbol over a date range (YYYY-MM-DD).
func (s *Service) Candles(ctx context.Context, symbol string, from, to string) ([]*models.Candle, error) {
	var candles []*models.Candle
	path := fmt.Sprintf("/market/ohlcv/%s?from=%s&to=%s",
		url.PathEscape(symbol), url.QueryEscape(from), url.QueryEscape(to))
	if err := s.client.Get(ctx, path, &candles); err != nil {
		return nil, err
	}
	return candles, nil
}

// Search finds instruments matching a query.
func (s *Service) Search(ctx context.Context, query string) ([]*models.SymbolMatch, error) {
	var matches []*models.SymbolMatch
	path := "/market/search?q=" + url.QueryEscape(query)
	if err := s.client.Get(ctx, path, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// Watch polls batch prices at the poller's fixed interval, passing each
// result to handle, until the context is cancelled.
func (s *Service) Watch(ctx context.Context, symbols []string, p *poller.Poller, handle func([]*models.PriceTick)) error {
	return p.Run(ctx, func(ctx context.Context) (bool, error) {
		ticks, err := s.Prices(ctx, symbols)
		if err != nil {
			return false, err
		}
		handle(ticks)
		return false, nil
	})
}

// Ensure Service implements MarketService
var _ interfaces.MarketService = (*Service)(nil)
