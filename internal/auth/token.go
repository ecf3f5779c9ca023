package auth

import (
	"os"
	"strings"
)

// TokenStore persists the bearer token across runs as a single file under
// the state directory. It satisfies api.TokenSource.
type TokenStore struct {
	path string
}

// NewTokenStore creates a store backed by the given file path.
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Token returns the stored token, or "" when none is stored.
func (s *TokenStore) Token() string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Set writes the token, readable only by the owning user.
func (s *TokenStore) Set(token string) error {
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the stored token. Missing files are not an error.
func (s *TokenStore) Clear() {
	_ = os.Remove(s.path)
}
