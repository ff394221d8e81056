// Package auth holds the client-side session: persisted token storage and
// the session manager exposing the current user to the rest of the app.
package auth

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/alphadesk/alphadesk/internal/interfaces"
)

// tokenFile is the on-disk shape of the persisted token pair.
type tokenFile struct {
	AccessToken  string `toml:"access_token"`
	RefreshToken string `toml:"refresh_token"`
}

// FileStore persists the token pair to a TOML file with owner-only
// permissions. Reads are served from memory; the file is loaded once at
// construction.
type FileStore struct {
	mu     sync.Mutex
	path   string
	tokens tokenFile
}

// NewFileStore creates a file-backed token store, loading any existing
// tokens at path. A missing file is not an error; the store starts empty.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &s.tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}

	return s, nil
}

// AccessToken returns the persisted access token, or "" when absent.
func (s *FileStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.AccessToken
}

// RefreshToken returns the persisted refresh token, or "" when absent.
func (s *FileStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.RefreshToken
}

// Save persists a new token pair, replacing any previous one.
func (s *FileStore) Save(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokenFile{AccessToken: accessToken, RefreshToken: refreshToken}

	data, err := toml.Marshal(s.tokens)
	if err != nil {
		return fmt.Errorf("failed to marshal tokens: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create token directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// Clear removes all persisted tokens.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens = tokenFile{}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove token file: %w", err)
	}

	return nil
}

// MemoryStore is an in-memory token store for tests and ephemeral sessions.
type MemoryStore struct {
	mu     sync.Mutex
	tokens tokenFile
}

// NewMemoryStore creates an empty in-memory token store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.AccessToken
}

func (s *MemoryStore) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens.RefreshToken
}

func (s *MemoryStore) Save(accessToken, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokenFile{AccessToken: accessToken, RefreshToken: refreshToken}
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = tokenFile{}
	return nil
}

// Ensure both stores implement TokenStore
var (
	_ interfaces.TokenStore = (*FileStore)(nil)
	_ interfaces.TokenStore = (*MemoryStore)(nil)
)
