package auth

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_StartsEmptyWhenFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")

	store, err := NewFileStore(path)
	require.NoError(t, err)

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}

func TestFileStore_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("access-1", "refresh-1"))

	assert.Equal(t, "access-1", store.AccessToken())
	assert.Equal(t, "refresh-1", store.RefreshToken())

	// A new store instance reads the persisted pair back.
	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "access-1", reloaded.AccessToken())
	assert.Equal(t, "refresh-1", reloaded.RefreshToken())
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "tokens.toml")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("a", "r"))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, "a", reloaded.AccessToken())
}

func TestFileStore_OwnerOnlyPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "tokens.toml")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("access-1", "refresh-1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.toml")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Save("access-1", "refresh-1"))

	require.NoError(t, store.Clear())

	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Clearing an already-clear store is not an error.
	require.NoError(t, store.Clear())
}

func TestMemoryStore_SaveAndClear(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save("a", "r"))
	assert.Equal(t, "a", store.AccessToken())
	assert.Equal(t, "r", store.RefreshToken())

	require.NoError(t, store.Clear())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
}
