package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alphadesk/alphadesk/internal/common"
	"github.com/alphadesk/alphadesk/internal/interfaces"
	"github.com/alphadesk/alphadesk/internal/models"
)

// ErrNotAuthenticated is returned when an operation requires a session and
// none is present.
var ErrNotAuthenticated = errors.New("not authenticated")

// State is the session lifecycle state.
type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateAuthenticated State = "authenticated"
	StateAnonymous     State = "anonymous"
)

// Snapshot is the read-only view consumers get of the session.
type Snapshot struct {
	State   State
	Loading bool
	User    *models.User
}

// Manager owns the session lifecycle: startup resolution, login, logout and
// registration. Token storage is not reachable from outside this component
// and the API client.
type Manager struct {
	mu     sync.RWMutex
	state  State
	user   *models.User
	auth   interfaces.AuthService
	tokens interfaces.TokenStore
	logger *common.Logger
}

// NewManager creates a session manager in the uninitialized state.
func NewManager(authService interfaces.AuthService, tokens interfaces.TokenStore, logger *common.Logger) *Manager {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Manager{
		state:  StateUninitialized,
		auth:   authService,
		tokens: tokens,
		logger: logger,
	}
}

// Snapshot returns the current session state and user.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var user *models.User
	if m.user != nil {
		u := *m.user
		user = &u
	}
	return Snapshot{
		State:   m.state,
		Loading: m.state == StateLoading,
		User:    user,
	}
}

// Init resolves the session at startup. Without a persisted access token the
// session is anonymous and no profile request is made. With one, the profile
// is fetched; any failure clears tokens and resolves to anonymous.
func (m *Manager) Init(ctx context.Context) error {
	m.setState(StateLoading, nil)

	if m.tokens.AccessToken() == "" {
		m.setState(StateAnonymous, nil)
		return nil
	}

	user, err := m.auth.Profile(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Msg("Profile fetch failed, clearing session")
		if clearErr := m.tokens.Clear(); clearErr != nil {
			m.logger.Warn().Err(clearErr).Msg("Failed to clear tokens")
		}
		m.setState(StateAnonymous, nil)
		return nil
	}

	m.setState(StateAuthenticated, user)
	m.logger.Info().Str("username", user.Username).Msg("Session restored")
	return nil
}

// Login exchanges credentials for a token pair, persists it and transitions
// to authenticated with the returned profile.
func (m *Manager) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	m.setState(StateLoading, nil)

	result, err := m.auth.Login(ctx, creds)
	if err != nil {
		m.setState(StateAnonymous, nil)
		return nil, err
	}

	if err := m.tokens.Save(result.AccessToken, result.RefreshToken); err != nil {
		m.setState(StateAnonymous, nil)
		return nil, fmt.Errorf("failed to persist tokens: %w", err)
	}

	m.setState(StateAuthenticated, result.User)
	m.logger.Info().Str("username", result.User.Username).Msg("Logged in")
	return result.User, nil
}

// Logout notifies the backend best-effort, always clears persisted tokens
// and transitions to anonymous.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.auth.Logout(ctx); err != nil {
		// Best effort only; local teardown proceeds regardless.
		m.logger.Debug().Err(err).Msg("Backend logout failed")
	}

	if err := m.tokens.Clear(); err != nil {
		m.setState(StateAnonymous, nil)
		return fmt.Errorf("failed to clear tokens: %w", err)
	}

	m.setState(StateAnonymous, nil)
	m.logger.Info().Msg("Logged out")
	return nil
}

// Register delegates to the registration endpoint. Session state is not
// mutated; there is no auto-login after registration.
func (m *Manager) Register(ctx context.Context, reg models.Registration) error {
	return m.auth.Register(ctx, reg)
}

// Claims decodes the persisted access token's display claims. Token storage
// stays inside this component; only derived claims leave it.
func (m *Manager) Claims() (*TokenClaims, error) {
	token := m.tokens.AccessToken()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return DecodeClaims(token)
}

// SessionExpired transitions to anonymous after a failed token refresh.
// Wired to the API client's session-expired notification; the client has
// already cleared persisted tokens by the time this runs.
func (m *Manager) SessionExpired() {
	m.setState(StateAnonymous, nil)
	m.logger.Warn().Msg("Session expired, re-authentication required")
}

func (m *Manager) setState(state State, user *models.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
	m.user = user
}
