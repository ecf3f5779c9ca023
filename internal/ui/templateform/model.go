package templateform

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/plans"
	"github.com/talentwork128/mailvet/internal/ui/messages"
	"github.com/talentwork128/mailvet/internal/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Width(10)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	planStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
)

type field int

const (
	fieldTitle field = iota
	fieldSubject
	fieldCompanyName
	fieldCompanyLocation
	fieldCompanyWebsite
	fieldContactPhone
	fieldContent
	fieldCount
)

// Model is the template submit/edit form.
type Model struct {
	inputs     [fieldCount - 1]textinput.Model
	content    textarea.Model
	focused    field
	client     *api.Client
	cache      *cache.DB
	editingID  string
	err        string
	submitting bool
	width      int
	height     int
}

// New creates a template form. With a non-nil editing template the form is
// prefilled and submits as an update; otherwise it submits a new template.
func New(client *api.Client, db *cache.DB, editing *api.Template) Model {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Width = 60
		return ti
	}

	m := Model{
		client: client,
		cache:  db,
	}
	m.inputs[fieldTitle] = mk("Template title")
	m.inputs[fieldSubject] = mk("Email subject line")
	m.inputs[fieldCompanyName] = mk("Company name")
	m.inputs[fieldCompanyLocation] = mk("City, Country")
	m.inputs[fieldCompanyWebsite] = mk("https://company.example.com")
	m.inputs[fieldContactPhone] = mk("+1 (555) 000-0000")

	ta := textarea.New()
	ta.Placeholder = "HTML content of the email template..."
	ta.SetWidth(80)
	ta.SetHeight(8)
	m.content = ta

	if editing != nil {
		m.editingID = editing.ID
		m.inputs[fieldTitle].SetValue(editing.Title)
		m.inputs[fieldSubject].SetValue(editing.Subject)
		m.inputs[fieldCompanyName].SetValue(editing.CompanyName)
		m.inputs[fieldCompanyLocation].SetValue(editing.CompanyLocation)
		m.inputs[fieldCompanyWebsite].SetValue(editing.CompanyWebsite)
		m.inputs[fieldContactPhone].SetValue(editing.ContactPhone)
		m.content.SetValue(editing.Content)
	}

	m.inputs[fieldTitle].Focus()
	return m
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	fw := w - 14
	if fw > 80 {
		fw = 80
	}
	for i := range m.inputs {
		m.inputs[i].Width = fw
	}
	m.content.SetWidth(fw)
}

// Editing reports whether the form updates an existing template.
func (m Model) Editing() bool {
	return m.editingID != ""
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			m.focused = (m.focused + 1) % fieldCount
			return m, m.updateFocus()
		case "shift+tab":
			m.focused = (m.focused + fieldCount - 1) % fieldCount
			return m, m.updateFocus()
		case "ctrl+s":
			if m.submitting {
				return m, nil
			}
			draft := m.draft()
			if err := validate.Struct(draft); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.submitting = true
			m.err = ""
			return m, m.save(draft)
		}

	case messages.TemplateSavedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == fieldContent {
		m.content, cmd = m.content.Update(msg)
	} else {
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	}
	return m, cmd
}

func (m *Model) updateFocus() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.content.Blur()
	if m.focused == fieldContent {
		return m.content.Focus()
	}
	return m.inputs[m.focused].Focus()
}

func (m Model) draft() api.TemplateDraft {
	return api.TemplateDraft{
		Title:           strings.TrimSpace(m.inputs[fieldTitle].Value()),
		Subject:         strings.TrimSpace(m.inputs[fieldSubject].Value()),
		Content:         strings.TrimSpace(m.content.Value()),
		CompanyName:     strings.TrimSpace(m.inputs[fieldCompanyName].Value()),
		CompanyLocation: strings.TrimSpace(m.inputs[fieldCompanyLocation].Value()),
		CompanyWebsite:  strings.TrimSpace(m.inputs[fieldCompanyWebsite].Value()),
		ContactPhone:    strings.TrimSpace(m.inputs[fieldContactPhone].Value()),
	}
}

func (m Model) save(draft api.TemplateDraft) tea.Cmd {
	client := m.client
	db := m.cache
	editingID := m.editingID

	return func() tea.Msg {
		ctx := context.Background()
		if editingID != "" {
			resp, err := client.UpdateTemplate(ctx, editingID, draft)
			if err != nil {
				return messages.TemplateSavedMsg{Err: err}
			}
			db.ClearState(cache.KeyEditingTemplate)
			return messages.TemplateSavedMsg{Template: resp.Data.Template, Updated: true}
		}

		resp, err := client.SubmitTemplate(ctx, draft)
		if err != nil {
			return messages.TemplateSavedMsg{Err: err}
		}
		// A plan selection carried from the pricing view is consumed here.
		db.ClearState(cache.KeySelectedPlan)
		return messages.TemplateSavedMsg{Template: resp.Data.Template}
	}
}

// View renders the form.
func (m Model) View() string {
	var sb strings.Builder

	if m.editingID != "" {
		sb.WriteString(titleStyle.Render("Edit Template"))
	} else {
		sb.WriteString(titleStyle.Render("Submit Template"))
	}
	sb.WriteString("\n")

	if planID := m.cache.GetState(cache.KeySelectedPlan); planID != "" {
		if p := plans.ByID(planID); p != nil {
			sb.WriteString(planStyle.Render("Plan: " + p.Name))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")

	labels := []string{"title", "subject", "company", "location", "website", "phone"}
	for i := range m.inputs {
		sb.WriteString(labelStyle.Render(labels[i]) + " " + m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	sb.WriteString(labelStyle.Render("content"))
	sb.WriteString("\n")
	sb.WriteString(m.content.View())
	sb.WriteString("\n\n")

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n")
	}

	if m.submitting {
		sb.WriteString("Submitting...")
	} else {
		sb.WriteString(hintStyle.Render("Tab to switch fields | Ctrl+S to submit | Esc to cancel"))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
