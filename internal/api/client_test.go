package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens string

func (s staticTokens) Token() string { return string(s) }

func testClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, tokens)
}

func TestErrorMessageFromMessageField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Invalid email or password"}`))
	}, nil)

	_, err := c.Login(context.Background(), "a@b.com", "nope")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Invalid email or password", apiErr.Message)
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestErrorMessageFromErrorField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Invalid credentials"}`))
	}, nil)

	_, err := c.Login(context.Background(), "a@b.com", "nope")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func TestErrorMessageFieldWinsOverErrorField(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"primary","error":"secondary"}`))
	}, nil)

	_, err := c.Login(context.Background(), "a@b.com", "nope")
	require.Error(t, err)
	assert.Equal(t, "primary", err.Error())
}

func TestErrorFallbackMessage(t *testing.T) {
	bodies := map[string]string{
		"empty":     "",
		"non-json":  "<html>502 Bad Gateway</html>",
		"no fields": `{"success":false}`,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte(body))
			}, nil)

			_, err := c.Login(context.Background(), "a@b.com", "x")
			require.Error(t, err)
			assert.Equal(t, "An error occurred", err.Error())
		})
	}
}

func TestErrorReasonTag(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Email not verified","reason":"unverified_email"}`))
	}, nil)

	_, err := c.Login(context.Background(), "a@b.com", "pw")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, "unverified_email", apiErr.Reason)
}

func TestBearerTokenOnAuthedRequests(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1"}}}`))
	}, staticTokens("tok-123"))

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoBearerTokenOnUnauthedRequests(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{}}`))
	}, staticTokens("tok-123"))

	_, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestNoBearerHeaderWhenTokenEmpty(t *testing.T) {
	var gotAuth string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"user":{}}}`))
	}, staticTokens(""))

	_, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestPasswordResetEndpoints(t *testing.T) {
	var gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}, nil)

	_, err := c.ForgotPassword(context.Background(), "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "/auth/forgot-password", gotPath)

	_, err = c.ResetPassword(context.Background(), "reset-tok", "newpassword")
	require.NoError(t, err)
	assert.Equal(t, "/auth/reset-password", gotPath)
}

func TestSuccessResponseDecoding(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"success":true,"data":{"user":{"id":"u1","email":"a@b.com","name":"Ada"},"token":"tok"}}`))
	}, nil)

	resp, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Ada", resp.Data.User.Name)
	assert.Equal(t, "tok", resp.Data.Token)
}
