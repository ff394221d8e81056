// Package authsvc wraps the authentication endpoints of the AlphaDesk API.
package authsvc

import (
	"context"

	"github.com/alphadesk/alphadesk/internal/api"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// Service issues authentication requests through the shared API client.
type Service struct {
	client *api.Client
}

// New creates an auth service over the shared client.
func New(client *api.Client) *Service {
	return &Service{client: client}
}

// Login exchanges credentials for a token pair and the user profile.
// Persisting the pair is the session manager's job.
func (s *Service) Login(ctx context.Context, creds models.Credentials) (*models.LoginResult, error) {
	var result models.LoginResult
	if err := s.client.Post(ctx, "/auth/login", creds, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Register creates a new account. No tokens are issued.
func (s *Service) Register(ctx context.Context, reg models.Registration) error {
	return s.client.Post(ctx, "/auth/register", reg, nil)
}

// Logout invalidates the session server-side.
func (s *Service) Logout(ctx context.Context) error {
	return s.client.Post(ctx, "/auth/logout", nil, nil)
}

// Profile fetches the current user's profile.
func (s *Service) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.client.Get(ctx, "/auth/profile", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Ensure Service implements AuthService
var _ interfaces.AuthService = (*Service)(nil)
