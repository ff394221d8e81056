// Package strategy wraps the strategy endpoints of the AlphaDesk API.
package strategy

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// Service issues strategy requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates a strategy service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// List retrieves all strategies for the current user.
func (s *Service) List(ctx context.Context) ([]*models.Strategy, error) {
	var strategies []*models.Strategy
	if err := s.client.Get(ctx, "/strategies", &strategies); err != nil {
		return nil, err
	}
	return strategies, nil
}

// Get retrieves a strategy by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Strategy, error) {
	var st models.Strategy
	if err := s.client.Get(ctx, "/strategies/"+url.PathEscape(id), &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Create creates a new strategy.
func (s *Service) Create(ctx context.Context, input models.StrategyInput) (*models.Strategy, error) {
	var st models.Strategy
	if err := s.client.Post(ctx, "/strategies", input, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Update updates a strategy, creating a new version server-side.
func (s *Service) Update(ctx context.Context, id string, input models.StrategyInput) (*models.Strategy, error) {
	var st models.Strategy
	if err := s.client.Put(ctx, "/strategies/"+url.PathEscape(id), input, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

// Delete removes a strategy.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/strategies/"+url.PathEscape(id))
}

// Versions retrieves the version history of a strategy.
func (s *Service) Versions(ctx context.Context, id string) ([]*models.StrategyVersion, error) {
	var versions []*models.StrategyVersion
	path := fmt.Sprintf("/strategies/%s/versions", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// GetVersion retrieves a specific historical version of a strategy.
func (s *Service) GetVersion(ctx context.Context, id string, version int) (*models.StrategyVersion, error) {
	var v models.StrategyVersion
	path := fmt.Sprintf("/strategies/%s/versions/%d", url.PathEscape(id), version)
	if err := s.client.Get(ctx, path, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// EvaluateSignals asks the backend to evaluate the strategy's signals
// against current market data. The evaluation itself is backend work.
func (s *Service) EvaluateSignals(ctx context.Context, id string) (*models.SignalEvaluation, error) {
	var eval models.SignalEvaluation
	path := fmt.Sprintf("/strategies/%s/signals", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &eval); err != nil {
		return nil, err
	}
	return &eval, nil
}

// Ensure Service implements StrategyService
var _ interfaces.StrategyService = (*Service)(nil)
