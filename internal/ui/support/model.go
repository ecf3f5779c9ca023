package support

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/ui/messages"
	"github.com/talentwork128/mailvet/internal/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Width(9)
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
)

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldCompany
	fieldSubject
	fieldMessage
	fieldCount
)

// Model is the support contact form.
type Model struct {
	inputs     [fieldCount - 1]textinput.Model
	message    textarea.Model
	focused    field
	client     *api.Client
	err        string
	sent       bool
	submitting bool
	width      int
	height     int
}

// New creates a support form, prefilled from the current user when known.
func New(client *api.Client, user *api.User) Model {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Width = 50
		return ti
	}

	m := Model{client: client}
	m.inputs[fieldName] = mk("Your name")
	m.inputs[fieldEmail] = mk("you@company.com")
	m.inputs[fieldCompany] = mk("Company (optional)")
	m.inputs[fieldSubject] = mk("Subject (optional)")

	ta := textarea.New()
	ta.Placeholder = "How can we help?"
	ta.SetWidth(60)
	ta.SetHeight(6)
	m.message = ta

	if user != nil {
		m.inputs[fieldName].SetValue(user.Name)
		m.inputs[fieldEmail].SetValue(user.Email)
		m.inputs[fieldCompany].SetValue(user.Company)
	}

	m.inputs[fieldName].Focus()
	return m
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	fw := w - 14
	if fw > 70 {
		fw = 70
	}
	for i := range m.inputs {
		m.inputs[i].Width = fw
	}
	m.message.SetWidth(fw)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.sent {
			return m, func() tea.Msg { return messages.GoBackMsg{} }
		}
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
			draft := api.SupportDraft{
				Name:    strings.TrimSpace(m.inputs[fieldName].Value()),
				Email:   strings.TrimSpace(m.inputs[fieldEmail].Value()),
				Company: strings.TrimSpace(m.inputs[fieldCompany].Value()),
				Subject: strings.TrimSpace(m.inputs[fieldSubject].Value()),
				Message: strings.TrimSpace(m.message.Value()),
			}
			if err := validate.Struct(draft); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.submitting = true
			m.err = ""
			client := m.client
			return m, func() tea.Msg {
				resp, err := client.SubmitSupportMessage(context.Background(), draft)
				if err != nil {
					return messages.SupportSubmittedMsg{Err: err}
				}
				return messages.SupportSubmittedMsg{OK: resp.Success}
			}
		}

	case messages.SupportSubmittedMsg:
		m.submitting = false
		if msg.Err != nil {
			m.err = msg.Err.Error()
			return m, nil
		}
		if !msg.OK {
			m.err = "Could not send your message. Please try again."
			return m, nil
		}
		m.sent = true
		return m, nil
	}

	var cmd tea.Cmd
	if m.focused == fieldMessage {
		m.message, cmd = m.message.Update(msg)
	} else {
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	}
	return m, cmd
}

func (m *Model) updateFocus() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
	if m.focused == fieldMessage {
		return m.message.Focus()
	}
	return m.inputs[m.focused].Focus()
}

// View renders the support form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Contact Support"))
	sb.WriteString("\n\n")

	if m.sent {
		sb.WriteString(okStyle.Render("Message sent."))
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("We'll get back to you by email. Press any key to continue."))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
	}

	labels := []string{"name", "email", "company", "subject"}
	for i := range m.inputs {
		sb.WriteString(labelStyle.Render(labels[i]) + " " + m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	sb.WriteString(labelStyle.Render("message"))
	sb.WriteString("\n")
	sb.WriteString(m.message.View())
	sb.WriteString("\n\n")

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n")
	}

	if m.submitting {
		sb.WriteString("Sending...")
	} else {
		sb.WriteString(hintStyle.Render("Tab to switch fields | Ctrl+S to send | Esc to cancel"))
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
