// Package backtest wraps the backtest endpoints of the AlphaDesk API.
// Simulation runs in the backend; this package launches runs and polls
// their status.
package backtest

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
	"github.com/alphadesk/alphadesk/internal/poller"
)

// Service issues backtest requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates a backtest service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// List retrieves all backtests for the current user.
func (s *Service) List(ctx context.Context) ([]*models.Backtest, error) {
	var backtests []*models.Backtest
	if err := s.client.Get(ctx, "/backtests", &backtests); err != nil {
		return nil, err
	}
	return backtests, nil
}

// Get retrieves a backtest by ID, including its current status.
func (s *Service) Get(ctx context.Context, id string) (*models.Backtest, error) {
	var bt models.Backtest
	if err := s.client.Get(ctx, "/backtests/"+url.PathEscape(id), &bt); err != nil {
		return nil, err
	}
	return &bt, nil
}

// Run launches a backtest and returns it in queued or running state.
func (s *Service) Run(ctx context.Context, input models.BacktestInput) (*models.Backtest, error) {
	var bt models.Backtest
	if err := s.client.Post(ctx, "/backtests", input, &bt); err != nil {
		return nil, err
	}
	return &bt, nil
}

// Cancel requests cancellation of a running backtest.
func (s *Service) Cancel(ctx context.Context, id string) error {
	path := fmt.Sprintf("/backtests/%s/cancel", url.PathEscape(id))
	return s.client.Post(ctx, path, nil, nil)
}

// Results retrieves the summary metrics of a completed backtest.
func (s *Service) Results(ctx context.Context, id string) (*models.BacktestResults, error) {
	var results models.BacktestResults
	path := fmt.Sprintf("/backtests/%s/results", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

// EquityCurve retrieves the equity curve of a completed backtest.
func (s *Service) EquityCurve(ctx context.Context, id string) ([]*models.EquityPoint, error) {
	var points []*models.EquityPoint
	path := fmt.Sprintf("/backtests/%s/equity", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// Await polls the backtest at the poller's fixed interval until it reaches a
// terminal status. Fetch errors stop the wait and are returned to the caller.
func (s *Service) Await(ctx context.Context, id string, p *poller.Poller) (*models.Backtest, error) {
	var last *models.Backtest
	var fetchErr error

	err := p.Run(ctx, func(ctx context.Context) (bool, error) {
		bt, err := s.Get(ctx, id)
		if err != nil {
			fetchErr = err
			return true, nil
		}
		last = bt
		return bt.Status.Terminal(), nil
	})
	if err != nil {
		return last, err
	}
	if fetchErr != nil {
		return nil, fetchErr
	}
	return last, nil
}

// Ensure Service implements BacktestService
var _ interfaces.BacktestService = (*Service)(nil)
