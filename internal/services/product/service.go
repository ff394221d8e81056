// Package product wraps the structured-product endpoints of the AlphaDesk
// API. Pricing models run in the backend.
package product

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// Service issues product requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates a product service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// List retrieves all structured products for the current user.
func (s *Service) List(ctx context.Context) ([]*models.Product, error) {
	var products []*models.Product
	if err := s.client.Get(ctx, "/products", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Get retrieves a product by ID.
func (s *Service) Get(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := s.client.Get(ctx, "/products/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Build creates a new structured product from its terms.
func (s *Service) Build(ctx context.Context, input models.ProductInput) (*models.Product, error) {
	var p models.Product
	if err := s.client.Post(ctx, "/products", input, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Reprice asks the backend to re-run the pricing model for a product.
func (s *Service) Reprice(ctx context.Context, id string) (*models.ProductPricing, error) {
	var pricing models.ProductPricing
	path := fmt.Sprintf("/products/%s/reprice", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &pricing); err != nil {
		return nil, err
	}
	return &pricing, nil
}

// Issue moves a priced product to issued status.
func (s *Service) Issue(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	path := fmt.Sprintf("/products/%s/issue", url.PathEscape(id))
	if err := s.client.Post(ctx, path, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Versions retrieves the version history of a product's terms.
func (s *Service) Versions(ctx context.Context, id string) ([]*models.ProductVersion, error) {
	var versions []*models.ProductVersion
	path := fmt.Sprintf("/products/%s/versions", url.PathEscape(id))
	if err := s.client.Get(ctx, path, &versions); err != nil {
		return nil, err
	}
	return versions, nil
}

// Ensure Service implements ProductService
var _ interfaces.ProductService = (*Service)(nil)
