package cache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentwork128/mailvet/internal/api"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func sampleTemplates() []api.Template {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []api.Template{
		{
			ID:              "t1",
			Title:           "Spring Promo",
			Subject:         "Save 20% this week",
			Content:         "<p>Hello</p>",
			CompanyName:     "Acme",
			CompanyLocation: "Berlin",
			CompanyWebsite:  "https://acme.example",
			ContactPhone:    "+49 30 1234",
			Tags:            []string{"promo", "spring"},
			Status:          api.StatusPending,
			SubmittedAt:     at,
		},
		{
			ID:          "t2",
			Title:       "Welcome Series",
			Status:      api.StatusApproved,
			SubmittedAt: at.Add(time.Hour),
		},
	}
}

func TestTemplateRoundTrip(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutTemplates(sampleTemplates()))

	got, fresh, err := db.GetTemplates(time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)
	require.Len(t, got, 2)

	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "Spring Promo", got[0].Title)
	assert.Equal(t, "Save 20% this week", got[0].Subject)
	assert.Equal(t, "Acme", got[0].CompanyName)
	assert.Equal(t, []string{"promo", "spring"}, got[0].Tags)
	assert.Equal(t, api.StatusPending, got[0].Status)
	assert.True(t, got[0].SubmittedAt.Equal(time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)))

	assert.Equal(t, "t2", got[1].ID)
	assert.Empty(t, got[1].Subject)
	assert.Nil(t, got[1].Tags)
}

func TestTemplateListStaleness(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutTemplates(sampleTemplates()))

	_, fresh, err := db.GetTemplates(0)
	require.NoError(t, err)
	assert.False(t, fresh)
}

func TestGetTemplatesMiss(t *testing.T) {
	db := openTestDB(t)

	got, fresh, err := db.GetTemplates(time.Hour)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, fresh)
}

func TestGetTemplateMiss(t *testing.T) {
	db := openTestDB(t)

	got, err := db.GetTemplate("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestInvalidateKeepsRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutTemplates(sampleTemplates()))
	require.NoError(t, db.InvalidateTemplates())

	got, _, err := db.GetTemplates(time.Hour)
	require.NoError(t, err)
	assert.Nil(t, got)

	one, err := db.GetTemplate("t1")
	require.NoError(t, err)
	require.NotNil(t, one)
	assert.Equal(t, "Spring Promo", one.Title)
}

func TestRemoveTemplate(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutTemplates(sampleTemplates()))
	require.NoError(t, db.RemoveTemplate("t1"))

	one, err := db.GetTemplate("t1")
	require.NoError(t, err)
	assert.Nil(t, one)

	// The list skips rows that no longer exist.
	got, _, err := db.GetTemplates(time.Hour)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestPutTemplatesReplacesList(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.PutTemplates(sampleTemplates()))

	require.NoError(t, db.PutTemplates([]api.Template{
		{ID: "t3", Title: "Autumn", Status: api.StatusPending, SubmittedAt: time.Now()},
	}))

	got, _, err := db.GetTemplates(time.Hour)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t3", got[0].ID)
}

func TestStateRoundTrip(t *testing.T) {
	db := openTestDB(t)

	assert.Empty(t, db.GetState(KeySelectedPlan))

	require.NoError(t, db.SetState(KeySelectedPlan, "2"))
	assert.Equal(t, "2", db.GetState(KeySelectedPlan))

	require.NoError(t, db.SetState(KeySelectedPlan, "3"))
	assert.Equal(t, "3", db.GetState(KeySelectedPlan))

	require.NoError(t, db.ClearState(KeySelectedPlan))
	assert.Empty(t, db.GetState(KeySelectedPlan))
}

func TestEditingTemplateSnapshot(t *testing.T) {
	db := openTestDB(t)

	assert.Nil(t, db.EditingTemplate())

	orig := sampleTemplates()[0]
	require.NoError(t, db.SetEditingTemplate(orig))

	got := db.EditingTemplate()
	require.NotNil(t, got)
	assert.Equal(t, orig.ID, got.ID)
	assert.Equal(t, orig.Title, got.Title)
	assert.Equal(t, orig.Tags, got.Tags)

	require.NoError(t, db.ClearState(KeyEditingTemplate))
	assert.Nil(t, db.EditingTemplate())
}

func TestNotifications(t *testing.T) {
	db := openTestDB(t)

	assert.Equal(t, 0, db.UnreadNotificationCount())
	assert.Empty(t, db.Notifications(10))

	require.NoError(t, db.AddNotification("t1", "Spring Promo", api.StatusPending, api.StatusApproved))
	require.NoError(t, db.AddNotification("t2", "Welcome Series", api.StatusPending, api.StatusRejected))

	assert.Equal(t, 2, db.UnreadNotificationCount())

	ns := db.Notifications(10)
	require.Len(t, ns, 2)
	for _, n := range ns {
		assert.False(t, n.Read)
	}

	db.MarkNotificationRead(ns[0].ID)
	assert.Equal(t, 1, db.UnreadNotificationCount())
}

func TestSupportMessageRoundTrip(t *testing.T) {
	db := openTestDB(t)

	msgs := []api.SupportMessage{
		{
			ID:          "s1",
			Name:        "Ada",
			Email:       "ada@example.com",
			Message:     "Preview is blank",
			Status:      "open",
			SubmittedAt: time.Date(2026, 1, 2, 15, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, db.PutSupportMessages(msgs))

	got, fresh, err := db.GetSupportMessages(time.Hour)
	require.NoError(t, err)
	assert.True(t, fresh)
	require.Len(t, got, 1)
	assert.Equal(t, "Ada", got[0].Name)
	assert.Equal(t, "open", got[0].Status)
}
