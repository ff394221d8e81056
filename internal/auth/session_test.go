package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphadesk/alphadesk/internal/models"
)

// stubAuthService fakes the backend auth endpoints and records calls.
type stubAuthService struct {
	loginResult  *models.LoginResult
	loginErr     error
	registerErr  error
	logoutErr    error
	profile      *models.User
	profileErr   error
	profileCalls int
	logoutCalls  int
}

func (s *stubAuthService) Login(_ context.Context, _ models.Credentials) (*models.LoginResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Register(_ context.Context, _ models.Registration) error {
	return s.registerErr
}

func (s *stubAuthService) Logout(_ context.Context) error {
	s.logoutCalls++
	return s.logoutErr
}

func (s *stubAuthService) Profile(_ context.Context) (*models.User, error) {
	s.profileCalls++
	return s.profile, s.profileErr
}

func TestManager_StartsUninitialized(t *testing.T) {
	m := NewManager(&stubAuthService{}, NewMemoryStore(), nil)
	assert.Equal(t, StateUninitialized, m.Snapshot().State)
}

func TestManager_Init_NoToken_AnonymousWithoutProfileCall(t *testing.T) {
	svc := &stubAuthService{}
	m := NewManager(svc, NewMemoryStore(), nil)

	require.NoError(t, m.Init(context.Background()))

	snap := m.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Nil(t, snap.User)
	assert.Equal(t, 0, svc.profileCalls, "profile endpoint must not be called")
}

func TestManager_Init_TokenPresent_RestoresSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))

	svc := &stubAuthService{
		profile: &models.User{ID: "u1", Username: "quant", Role: models.RoleTrader},
	}
	m := NewManager(svc, store, nil)

	require.NoError(t, m.Init(context.Background()))

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	require.NotNil(t, snap.User)
	assert.Equal(t, "quant", snap.User.Username)
	assert.Equal(t, 1, svc.profileCalls)
}

func TestManager_Init_ProfileFetchFails_ClearsTokens(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))

	svc := &stubAuthService{profileErr: errors.New("boom")}
	m := NewManager(svc, store, nil)

	require.NoError(t, m.Init(context.Background()))

	snap := m.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Nil(t, snap.User)
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestManager_Login_PersistsTokensAndProfile(t *testing.T) {
	store := NewMemoryStore()
	svc := &stubAuthService{
		loginResult: &models.LoginResult{
			AccessToken:  "access-new",
			RefreshToken: "refresh-new",
			User:         &models.User{ID: "u1", Username: "quant", Role: models.RoleAnalyst},
		},
	}
	m := NewManager(svc, store, nil)

	user, err := m.Login(context.Background(), models.Credentials{Username: "quant", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "quant", user.Username)

	assert.Equal(t, "access-new", store.AccessToken())
	assert.Equal(t, "refresh-new", store.RefreshToken())

	snap := m.Snapshot()
	assert.Equal(t, StateAuthenticated, snap.State)
	assert.Equal(t, models.RoleAnalyst, snap.User.Role)
}

func TestManager_Login_Failure_LeavesAnonymous(t *testing.T) {
	store := NewMemoryStore()
	svc := &stubAuthService{loginErr: errors.New("invalid credentials")}
	m := NewManager(svc, store, nil)

	_, err := m.Login(context.Background(), models.Credentials{Username: "quant", Password: "wrong"})
	require.Error(t, err)

	assert.Equal(t, StateAnonymous, m.Snapshot().State)
	assert.Empty(t, store.AccessToken())
}

func TestManager_Logout_ClearsEvenWhenBackendFails(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))

	svc := &stubAuthService{
		profile:   &models.User{ID: "u1", Username: "quant"},
		logoutErr: errors.New("backend down"),
	}
	m := NewManager(svc, store, nil)
	require.NoError(t, m.Init(context.Background()))
	require.Equal(t, StateAuthenticated, m.Snapshot().State)

	require.NoError(t, m.Logout(context.Background()))

	assert.Equal(t, 1, svc.logoutCalls)
	assert.Equal(t, StateAnonymous, m.Snapshot().State)
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestManager_Register_DoesNotMutateSession(t *testing.T) {
	store := NewMemoryStore()
	svc := &stubAuthService{}
	m := NewManager(svc, store, nil)
	require.NoError(t, m.Init(context.Background()))

	require.NoError(t, m.Register(context.Background(), models.Registration{
		Username: "newbie", Email: "n@example.com", Password: "pw",
	}))

	assert.Equal(t, StateAnonymous, m.Snapshot().State, "no auto-login after registration")
	assert.Empty(t, store.AccessToken())
}

func TestManager_SessionExpired_TransitionsToAnonymous(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))

	svc := &stubAuthService{profile: &models.User{ID: "u1", Username: "quant"}}
	m := NewManager(svc, store, nil)
	require.NoError(t, m.Init(context.Background()))
	require.Equal(t, StateAuthenticated, m.Snapshot().State)

	m.SessionExpired()

	snap := m.Snapshot()
	assert.Equal(t, StateAnonymous, snap.State)
	assert.Nil(t, snap.User)
}

func TestManager_Snapshot_ReturnsUserCopy(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("access-1", "refresh-1"))

	svc := &stubAuthService{profile: &models.User{ID: "u1", Username: "quant"}}
	m := NewManager(svc, store, nil)
	require.NoError(t, m.Init(context.Background()))

	snap := m.Snapshot()
	snap.User.Username = "mutated"

	assert.Equal(t, "quant", m.Snapshot().User.Username)
}
