package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitSupportMessage(t *testing.T) {
	var gotPath string
	var gotBody SupportDraft
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"success":true,"message":"Thanks, we'll be in touch."}`))
	}, staticTokens("tok"))

	resp, err := c.SubmitSupportMessage(context.Background(), SupportDraft{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "The preview renders blank.",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "/support/message", gotPath)
	assert.Equal(t, "ada@example.com", gotBody.Email)
}

func TestSupportListOptionsEncode(t *testing.T) {
	assert.Equal(t, "", SupportListOptions{}.encode())
	got := SupportListOptions{Page: 1, Status: "open", Priority: "high"}.encode()
	assert.Equal(t, "?page=1&priority=high&status=open", got)
}

func TestSupportWorkflowEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true}`))
	}, staticTokens("tok"))

	ctx := context.Background()

	_, err := c.RespondSupportMessage(ctx, "s1", "On it.")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/support/message/s1/respond", gotPath)

	_, err = c.UpdateSupportStatus(ctx, "s1", "in_progress", "sam")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/support/message/s1/status", gotPath)
}

func TestGetSupportStats(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/support/stats", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"total":12,"open":4,"inProgress":3,"resolved":5}}`))
	}, staticTokens("tok"))

	resp, err := c.GetSupportStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, resp.Data.Total)
	assert.Equal(t, 4, resp.Data.Open)
}
