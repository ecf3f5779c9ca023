package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// TokenSource supplies the bearer token attached to authenticated requests.
// An empty string means no credential is available.
type TokenSource interface {
	Token() string
}

// Client talks to the template review service.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewClient creates a client against the given base URL. The token source may
// be nil for a client that only performs unauthenticated calls.
func NewClient(baseURL string, timeout time.Duration, tokens TokenSource) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: timeout,
		},
		tokens: tokens,
	}
}

// APIError is a non-2xx response, carrying the server-reported message.
// Reason is the structured failure tag when the server provides one.
type APIError struct {
	Status  int
	Message string
	Reason  string
}

func (e *APIError) Error() string {
	return e.Message
}

// errEnvelope mirrors the service's failure body. Older deployments use
// "error", newer ones "message"; "reason" is a machine-readable tag.
type errEnvelope struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Reason  string `json:"reason"`
}

// do performs one request and decodes the JSON response into dst.
// A single attempt per call; the caller decides what to do with an error.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool, dst any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "mailvet/1.0")
	if authed && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e errEnvelope
		_ = json.Unmarshal(data, &e)
		msg := e.Message
		if msg == "" {
			msg = e.Error
		}
		if msg == "" {
			msg = "An error occurred"
		}
		return &APIError{Status: resp.StatusCode, Message: msg, Reason: e.Reason}
	}

	if dst != nil {
		if err := json.Unmarshal(data, dst); err != nil {
			return fmt.Errorf("decoding response from %s: %w", path, err)
		}
	}
	return nil
}
