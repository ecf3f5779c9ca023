package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/talentwork128/mailvet/internal/api"
)

// ErrEmailNotVerified is returned by Login when the server rejects the
// credentials because the account's email address is still unverified.
// Callers can prompt for verification instead of showing a generic failure.
var ErrEmailNotVerified = errors.New("email not verified")

// Session is the single source of truth for the authenticated user.
// One instance exists per running application; it is constructed in main and
// injected into every consumer. Overlapping calls are not serialized --
// last write wins, same as the service's web client.
type Session struct {
	client *api.Client
	tokens *TokenStore

	CurrentUser *api.User
	Loading     bool
}

// NewSession creates a session store. Loading starts true and stays true
// until Initialize has run.
func NewSession(client *api.Client, tokens *TokenStore) *Session {
	return &Session{
		client:  client,
		tokens:  tokens,
		Loading: true,
	}
}

// LoggedIn reports whether a user is currently authenticated.
func (s *Session) LoggedIn() bool {
	return s.CurrentUser != nil
}

// Initialize restores a persisted session at startup. With no stored token it
// returns immediately without touching the network. A stored token is
// revalidated against the profile endpoint; any failure clears it.
func (s *Session) Initialize(ctx context.Context) {
	defer func() { s.Loading = false }()

	if s.tokens.Token() == "" {
		return
	}

	resp, err := s.client.Me(ctx)
	if err != nil {
		log.Printf("restoring session: %v", err)
		s.tokens.Clear()
		return
	}
	if !resp.Success {
		s.tokens.Clear()
		return
	}

	u := resp.Data.User
	s.CurrentUser = &u
}

// Login authenticates with email and password. On success the returned token
// is persisted and CurrentUser is set. An unverified account surfaces as
// ErrEmailNotVerified; any other failure returns (false, nil).
func (s *Session) Login(ctx context.Context, email, password string) (bool, error) {
	s.Loading = true
	defer func() { s.Loading = false }()

	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		if isUnverified(err) {
			return false, ErrEmailNotVerified
		}
		log.Printf("login: %v", err)
		return false, nil
	}
	if !resp.Success || resp.Data.Token == "" {
		return false, nil
	}

	if err := s.tokens.Set(resp.Data.Token); err != nil {
		log.Printf("persisting token: %v", err)
	}
	u := resp.Data.User
	s.CurrentUser = &u
	return true, nil
}

// Register creates an account and returns the server's success flag. It never
// authenticates: the account must be verified by email first.
func (s *Session) Register(ctx context.Context, name, email, password, company string) bool {
	s.Loading = true
	defer func() { s.Loading = false }()

	resp, err := s.client.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
		Company:  company,
	})
	if err != nil {
		log.Printf("register: %v", err)
		return false
	}
	return resp.Success
}

// VerifyEmail redeems a verification token. On success the returned token is
// persisted and CurrentUser is set, establishing a session.
func (s *Session) VerifyEmail(ctx context.Context, token, email string) bool {
	s.Loading = true
	defer func() { s.Loading = false }()

	resp, err := s.client.VerifyEmail(ctx, token, email)
	if err != nil {
		log.Printf("verify email: %v", err)
		return false
	}
	if !resp.Success || resp.Data.Token == "" {
		return false
	}

	if err := s.tokens.Set(resp.Data.Token); err != nil {
		log.Printf("persisting token: %v", err)
	}
	u := resp.Data.User
	s.CurrentUser = &u
	return true
}

// ResendVerification asks for a fresh verification email. No state changes.
func (s *Session) ResendVerification(ctx context.Context, email string) bool {
	resp, err := s.client.ResendVerification(ctx, email)
	if err != nil {
		log.Printf("resend verification: %v", err)
		return false
	}
	return resp.Success
}

// Logout invalidates the session server-side on a best-effort basis, then
// unconditionally clears the local user and stored token. The remote call is
// advisory; its failure never leaves the client logged in.
func (s *Session) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		log.Printf("logout: %v", err)
	}
	s.CurrentUser = nil
	s.tokens.Clear()
}

// isUnverified checks for the unverified-account rejection. The structured
// reason tag is preferred; the message substring is kept for servers that
// predate it.
func isUnverified(err error) bool {
	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Reason == "unverified_email" {
		return true
	}
	return strings.Contains(apiErr.Message, "Email not verified")
}
