package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMemoryStore tests basic operations of the in-memory store.
func TestMemoryStore(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Set("token", "abc"))

	value, ok := s.Get("token")
	assert.True(t, ok)
	assert.Equal(t, "abc", value)

	require.NoError(t, s.Set("token", "def"))

	value, _ = s.Get("token")
	assert.Equal(t, "def", value)

	require.NoError(t, s.Delete("token"))

	_, ok = s.Get("token")
	assert.False(t, ok)

	// Deleting an absent key is not an error.
	require.NoError(t, s.Delete("token"))
}

// TestFileStoreRoundTrip tests that values survive reopening the store.
func TestFileStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.yaml")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Set("access", "token-1"))
	require.NoError(t, s.Set("refresh", "token-2"))
	require.NoError(t, s.Delete("refresh"))

	reopened, err := NewFileStore(path)
	require.NoError(t, err)

	value, ok := reopened.Get("access")
	assert.True(t, ok)
	assert.Equal(t, "token-1", value)

	_, ok = reopened.Get("refresh")
	assert.False(t, ok)
}

// TestFileStorePermissions tests that the state file is owner-only.
func TestFileStorePermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.yaml")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("access", "secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(DefaultFilePermissions), info.Mode().Perm())
}

// TestFileStoreMissingFile tests opening a store whose file does not exist yet.
func TestFileStoreMissingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "state.yaml")

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, ok := s.Get("anything")
	assert.False(t, ok)

	// First write creates the parent directory.
	require.NoError(t, s.Set("key", "value"))

	_, err = os.Stat(path)
	require.NoError(t, err)
}

// TestFileStoreCorruptFile tests that a malformed state file is rejected.
func TestFileStoreCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n\t- not yaml"), DefaultFilePermissions))

	_, err := NewFileStore(path)
	require.Error(t, err)
}
