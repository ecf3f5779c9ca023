package templatelist

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/config"
	"github.com/talentwork128/mailvet/internal/ui/messages"
)

// Model is the dashboard's template list view.
type Model struct {
	list       list.Model
	client     *api.Client
	cache      *cache.DB
	cfg        config.Config
	loading    bool
	confirming string // template id pending delete confirmation
	width      int
	height     int
}

// New creates a new template list model.
func New(cfg config.Config, client *api.Client, db *cache.DB) Model {
	delegate := Delegate{}
	l := list.New(nil, delegate, 0, 0)
	l.Title = "My Templates"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{
		list:   l,
		client: client,
		cache:  db,
		cfg:    cfg,
	}
}

// Init loads the initial template list.
func (m Model) Init() tea.Cmd {
	return m.load(false)
}

// Filtering reports whether the list's filter input owns the keyboard.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Confirming reports whether a delete confirmation is pending.
func (m Model) Confirming() bool {
	return m.confirming != ""
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.TemplatesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Error: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Templates))
		for i, t := range msg.Templates {
			items = append(items, TemplateItem{Template: t, Index: i})
		}
		m.list.SetItems(items)
		if msg.FromCache {
			m.list.Title = "My Templates (cached)"
		} else {
			m.list.Title = "My Templates"
		}
		return m, nil

	case messages.TemplateDeletedMsg:
		if msg.Err != nil {
			return m, status("Delete failed: "+msg.Err.Error(), true)
		}
		return m, tea.Batch(status("Template deleted", false), m.load(true))

	case messages.TemplateDuplicatedMsg:
		if msg.Err != nil {
			return m, status("Duplicate failed: "+msg.Err.Error(), true)
		}
		return m, tea.Batch(status("Template duplicated", false), m.load(true))

	case messages.TemplateSavedMsg:
		if msg.Err == nil {
			return m, m.load(true)
		}
		return m, nil

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		// Pending delete confirmation intercepts y/n.
		if m.confirming != "" {
			id := m.confirming
			m.confirming = ""
			if msg.String() == "y" {
				return m, m.deleteTemplate(id)
			}
			return m, status("Delete cancelled", false)
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(TemplateItem); ok {
				return m, func() tea.Msg {
					return messages.OpenPreviewMsg{Template: item.Template}
				}
			}
		case "e":
			if item, ok := m.list.SelectedItem().(TemplateItem); ok {
				t := item.Template
				// Snapshot for the edit-in-place flow.
				m.cache.SetEditingTemplate(t)
				return m, func() tea.Msg {
					return messages.OpenFormMsg{Editing: &t}
				}
			}
		case "d":
			if item, ok := m.list.SelectedItem().(TemplateItem); ok {
				m.confirming = item.Template.ID
				return m, status("Delete '"+item.Template.Title+"'? y/n", false)
			}
		case "y":
			if item, ok := m.list.SelectedItem().(TemplateItem); ok {
				return m, m.duplicateTemplate(item.Template.ID)
			}
		case "s":
			return m, func() tea.Msg {
				return messages.OpenFormMsg{}
			}
		case "r", "ctrl+r":
			m.loading = true
			m.list.Title = "My Templates (refreshing...)"
			return m, m.load(true)
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the template list.
func (m Model) View() string {
	return m.list.View()
}

func (m Model) load(force bool) tea.Cmd {
	client := m.client
	db := m.cache
	cfg := m.cfg

	return func() tea.Msg {
		if !force {
			cached, fresh, _ := db.GetTemplates(cfg.TemplateListTTL)
			if fresh && len(cached) > 0 {
				return messages.TemplatesLoadedMsg{Templates: cached, FromCache: true}
			}
		}

		resp, err := client.ListTemplates(context.Background(), api.ListOptions{Limit: cfg.FetchPageSize})
		if err != nil {
			// Fall back to whatever the cache has, stale included.
			cached, _, _ := db.GetTemplates(cfg.TemplateListTTL)
			if len(cached) > 0 {
				return messages.TemplatesLoadedMsg{Templates: cached, FromCache: true}
			}
			return messages.TemplatesLoadedMsg{Err: err}
		}

		db.PutTemplates(resp.Data.Templates)
		return messages.TemplatesLoadedMsg{Templates: resp.Data.Templates}
	}
}

func (m Model) deleteTemplate(id string) tea.Cmd {
	client := m.client
	db := m.cache
	return func() tea.Msg {
		if err := client.DeleteTemplate(context.Background(), id); err != nil {
			return messages.TemplateDeletedMsg{ID: id, Err: err}
		}
		db.RemoveTemplate(id)
		return messages.TemplateDeletedMsg{ID: id}
	}
}

func (m Model) duplicateTemplate(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.DuplicateTemplate(context.Background(), id)
		if err != nil {
			return messages.TemplateDuplicatedMsg{Err: err}
		}
		return messages.TemplateDuplicatedMsg{Template: resp.Data.Template}
	}
}

func status(text string, isErr bool) tea.Cmd {
	return func() tea.Msg {
		return messages.StatusMsg{Text: text, IsError: isErr}
	}
}
