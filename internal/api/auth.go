package api

import (
	"context"
	"net/http"
)

// RegisterRequest is the account creation payload.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Company  string `json:"company,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type verifyEmailRequest struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Register creates an account. It never yields a token; the account must be
// verified by email before a session can be established.
func (c *Client) Register(ctx context.Context, reg RegisterRequest) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", reg, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a user and bearer token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current token server-side.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, true, nil)
}

// VerifyEmail redeems an emailed verification token.
func (c *Client) VerifyEmail(ctx context.Context, token, email string) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify-email", verifyEmailRequest{Token: token, Email: email}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendVerification requests a fresh verification email.
func (c *Client) ResendVerification(ctx context.Context, email string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/resend-verification", emailRequest{Email: email}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the user the stored token belongs to.
func (c *Client) Me(ctx context.Context) (*ProfileResponse, error) {
	var out ProfileResponse
	if err := c.do(ctx, http.MethodGet, "/auth/me", nil, true, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ForgotPassword starts a password reset flow.
func (c *Client) ForgotPassword(ctx context.Context, email string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/forgot-password", emailRequest{Email: email}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResetPassword redeems a reset token for a new password.
func (c *Client) ResetPassword(ctx context.Context, token, password string) (*StatusResponse, error) {
	var out StatusResponse
	if err := c.do(ctx, http.MethodPost, "/auth/reset-password", resetPasswordRequest{Token: token, Password: password}, false, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
