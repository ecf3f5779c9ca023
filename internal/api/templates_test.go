package api

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptionsEncode(t *testing.T) {
	assert.Equal(t, "", ListOptions{}.encode())

	got := ListOptions{
		Page:      2,
		Limit:     10,
		Status:    "pending",
		Search:    "welcome",
		SortBy:    "title",
		SortOrder: "asc",
	}.encode()
	assert.Equal(t, "?limit=10&page=2&search=welcome&sortBy=title&sortOrder=asc&status=pending", got)

	assert.Equal(t, "?status=approved", ListOptions{Status: "approved"}.encode())
}

func TestTemplateEndpoints(t *testing.T) {
	var gotMethod, gotPath string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"success":true,"data":{"template":{"id":"t1"}}}`))
	}, staticTokens("tok"))

	ctx := context.Background()

	_, err := c.SubmitTemplate(ctx, TemplateDraft{Title: "x"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/template/submit", gotPath)

	_, err = c.GetTemplate(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Equal(t, "/template/t1", gotPath)

	_, err = c.UpdateTemplate(ctx, "t1", TemplateDraft{Title: "y"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/template/t1", gotPath)

	require.NoError(t, c.DeleteTemplate(ctx, "t1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/template/t1", gotPath)

	_, err = c.DuplicateTemplate(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/template/t1/duplicate", gotPath)
}

func TestListTemplatesQuery(t *testing.T) {
	var gotQuery string
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"success":true,"data":{"templates":[{"id":"t1"},{"id":"t2"}],"total":2,"page":1,"pages":1}}`))
	}, staticTokens("tok"))

	resp, err := c.ListTemplates(context.Background(), ListOptions{Limit: 30, Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, "limit=30&status=pending", gotQuery)
	assert.Len(t, resp.Data.Templates, 2)
	assert.Equal(t, 2, resp.Data.Total)
}

func TestBatchGetTemplatesKeepsOrderAndSkipsFailures(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		id := r.URL.Path[len("/template/"):]
		if id == "missing" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"Template not found"}`))
			return
		}
		w.Write([]byte(`{"success":true,"data":{"template":{"id":"` + id + `"}}}`))
	}, staticTokens("tok"))

	results, err := c.BatchGetTemplates(context.Background(), []string{"a", "missing", "b"})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, int32(3), calls.Load())

	require.NotNil(t, results[0])
	assert.Equal(t, "a", results[0].ID)
	assert.Nil(t, results[1])
	require.NotNil(t, results[2])
	assert.Equal(t, "b", results[2].ID)
}
