// Package portfolio wraps the portfolio endpoints of the AlphaDesk API.
package portfolio

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// Service issues portfolio requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates a portfolio service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// List retrieves all portfolios for the current user.
func (s *Service) List(ctx context.Context) ([]*models.Portfolio, error) {
	var portfolios []*models.Portfolio
	if err := s.client.Get(ctx, "/portfolios", &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}

// Get retrieves a portfolio by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.client.Get(ctx, "/portfolios/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create creates a new portfolio.
func (s *Service) Create(ctx context.Context, input models.PortfolioInput) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.client.Post(ctx, "/portfolios", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update updates an existing portfolio.
func (s *Service) Update(ctx context.Context, id string, input models.PortfolioInput) (*models.Portfolio, error) {
	var p models.Portfolio
	if err := s.client.Put(ctx, "/portfolios/"+url.PathEscape(id), input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes a portfolio.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/portfolios/"+url.PathEscape(id))
}

// Holdings retrieves the holdings of a portfolio.
func (s *Service) Holdings(ctx context.Context, id string) ([]*models.Holding, error) {
	var holdings []*models.Holding
	path := fmt.Sprintf("/portfolios/%s/holdings", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &holdings); err != nil {
		return nil, err
	}
	return holdings, nil
}

// Transactions retrieves the transaction history of a portfolio.
func (s *Service) Transactions(ctx context.Context, id string) ([]*models.Transaction, error) {
	var txs []*models.Transaction
	path := fmt.Sprintf("/portfolios/%s/transactions", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// AddTransaction records a transaction against a portfolio.
func (s *Service) AddTransaction(ctx context.Context, id string, input models.TransactionInput) (*models.Transaction, error) {
	var tx models.Transaction
	path := fmt.Sprintf("/portfolios/%s/transactions", url.PathEscape(id))
	if err := s.client.Post(ctx, path, input, &tx); err != nil {
		return nil, err
	}
	return &tx, nil
}

// Ensure Service implements PortfolioService
var _ interfaces.PortfolioService = (*Service)(nil)
