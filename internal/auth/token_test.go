package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenStoreRoundTrip(t *testing.T) {
	store := NewTokenStore(filepath.Join(t.TempDir(), "token"))

	assert.Empty(t, store.Token())

	require.NoError(t, store.Set("abc123"))
	assert.Equal(t, "abc123", store.Token())

	store.Clear()
	assert.Empty(t, store.Token())

	// Clearing twice is fine.
	store.Clear()
}

func TestTokenStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("  tok\n"), 0o600))

	store := NewTokenStore(path)
	assert.Equal(t, "tok", store.Token())
}

func TestTokenFilePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := NewTokenStore(path)
	require.NoError(t, store.Set("secret"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
