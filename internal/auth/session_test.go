package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwork128/mailvet/internal/api"
)

func newTestSession(t *testing.T, handler http.HandlerFunc) (*Session, *TokenStore, *atomic.Int32) {
	t.Helper()
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	tokens := NewTokenStore(filepath.Join(t.TempDir(), "token"))
	client := api.NewClient(srv.URL, 5*time.Second, tokens)
	return NewSession(client, tokens), tokens, &requests
}

func TestLoadingUntilInitialized(t *testing.T) {
	s, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {})

	assert.True(t, s.Loading)
	s.Initialize(context.Background())
	assert.False(t, s.Loading)
}

func TestInitializeWithoutTokenMakesNoRequests(t *testing.T) {
	s, _, requests := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {})

	s.Initialize(context.Background())

	assert.Equal(t, int32(0), requests.Load())
	assert.False(t, s.LoggedIn())
	assert.False(t, s.Loading)
}

func TestInitializeRestoresSession(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer stored-tok", r.Header.Get("Authorization"))
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","email":"a@b.com","name":"Ada"}}}`))
	})
	require.NoError(t, tokens.Set("stored-tok"))

	s.Initialize(context.Background())

	require.True(t, s.LoggedIn())
	assert.Equal(t, "Ada", s.CurrentUser.Name)
	assert.Equal(t, "stored-tok", tokens.Token())
}

func TestInitializeClearsRejectedToken(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Token expired"}`))
	})
	require.NoError(t, tokens.Set("stale-tok"))

	s.Initialize(context.Background())

	assert.False(t, s.LoggedIn())
	assert.Empty(t, tokens.Token())
}

func TestLoginSuccessPersistsTokenAndUser(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","name":"Ada"},"token":"fresh-tok"}}`))
	})

	ok, err := s.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.True(t, ok)
	require.True(t, s.LoggedIn())
	assert.Equal(t, "Ada", s.CurrentUser.Name)
	assert.Equal(t, "fresh-tok", tokens.Token())
	assert.False(t, s.Loading)
}

func TestLoginFailureLeavesNoSession(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	})

	ok, err := s.Login(context.Background(), "a@b.com", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, tokens.Token())
}

func TestLoginUnverifiedByReasonTag(t *testing.T) {
	s, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Please verify first","reason":"unverified_email"}`))
	})

	ok, err := s.Login(context.Background(), "a@b.com", "pw")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
	assert.False(t, s.LoggedIn())
}

func TestLoginUnverifiedByMessageSubstring(t *testing.T) {
	s, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Email not verified. Please check your inbox."}`))
	})

	ok, err := s.Login(context.Background(), "a@b.com", "pw")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrEmailNotVerified)
}

func TestLoginWithoutTokenInResponseFails(t *testing.T) {
	s, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1"}}}`))
	})

	ok, err := s.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.LoggedIn())
}

func TestRegisterNeverAuthenticates(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/register", r.URL.Path)
		w.Write([]byte(`{"success":true,"message":"Check your email"}`))
	})

	ok := s.Register(context.Background(), "Ada", "a@b.com", "longenough", "Acme")
	assert.True(t, ok)
	assert.False(t, s.LoggedIn())
	assert.Empty(t, tokens.Token())
}

func TestVerifyEmailEstablishesSession(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/verify-email", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","name":"Ada"},"token":"verified-tok"}}`))
	})

	ok := s.VerifyEmail(context.Background(), "123456", "a@b.com")
	assert.True(t, ok)
	require.True(t, s.LoggedIn())
	assert.Equal(t, "verified-tok", tokens.Token())
}

func TestResendVerification(t *testing.T) {
	s, _, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/resend-verification", r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	})

	assert.True(t, s.ResendVerification(context.Background(), "a@b.com"))
	assert.False(t, s.LoggedIn())
}

func TestLogoutClearsStateEvenWhenServerFails(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	require.NoError(t, tokens.Set("tok"))
	s.CurrentUser = &api.User{ID: "u1", Name: "Ada"}

	s.Logout(context.Background())

	assert.False(t, s.LoggedIn())
	assert.Empty(t, tokens.Token())
}

func TestLogoutClearsStateOnSuccess(t *testing.T) {
	s, tokens, _ := newTestSession(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/logout", r.URL.Path)
		w.Write([]byte(`{"success":true}`))
	})
	require.NoError(t, tokens.Set("tok"))
	s.CurrentUser = &api.User{ID: "u1"}

	s.Logout(context.Background())

	assert.False(t, s.LoggedIn())
	assert.Empty(t, tokens.Token())
}
