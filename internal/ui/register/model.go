package register

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/auth"
	"github.com/talentwork128/mailvet/internal/ui/messages"
	"github.com/talentwork128/mailvet/internal/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true).Padding(1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Width(10)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
)

type field int

const (
	fieldName field = iota
	fieldEmail
	fieldPassword
	fieldCompany
	fieldCount
)

// Model is the registration form view.
type Model struct {
	inputs     [fieldCount]textinput.Model
	focused    field
	err        string
	submitting bool
	done       bool
	session    *auth.Session
	width      int
	height     int
}

// New creates a new registration form.
func New(session *auth.Session) Model {
	name := textinput.New()
	name.Placeholder = "Full name"
	name.Focus()
	name.Width = 40

	email := textinput.New()
	email.Placeholder = "you@company.com"
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password (min 8 characters)"
	password.EchoMode = textinput.EchoPassword
	password.Width = 40

	company := textinput.New()
	company.Placeholder = "Company (optional)"
	company.Width = 40

	return Model{
		inputs:  [fieldCount]textinput.Model{name, email, password, company},
		session: session,
	}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			// Any key after success continues to verification.
			email := strings.TrimSpace(m.inputs[fieldEmail].Value())
			return m, func() tea.Msg {
				return messages.OpenVerifyMsg{Email: email}
			}
		}
		switch msg.String() {
		case "tab":
			m.focused = (m.focused + 1) % fieldCount
			return m, m.updateFocus()
		case "shift+tab":
			m.focused = (m.focused + fieldCount - 1) % fieldCount
			return m, m.updateFocus()
		case "enter", "ctrl+s":
			if m.submitting {
				return m, nil
			}
			req := api.RegisterRequest{
				Name:     strings.TrimSpace(m.inputs[fieldName].Value()),
				Email:    strings.TrimSpace(m.inputs[fieldEmail].Value()),
				Password: m.inputs[fieldPassword].Value(),
				Company:  strings.TrimSpace(m.inputs[fieldCompany].Value()),
			}
			if err := validate.Struct(req); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.submitting = true
			m.err = ""
			session := m.session
			return m, func() tea.Msg {
				ok := session.Register(context.Background(), req.Name, req.Email, req.Password, req.Company)
				return messages.RegisterResultMsg{OK: ok, Email: req.Email}
			}
		}

	case messages.RegisterResultMsg:
		m.submitting = false
		if !msg.OK {
			m.err = "Registration failed. The email may already be in use."
			return m, nil
		}
		m.done = true
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m *Model) updateFocus() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	return m.inputs[m.focused].Focus()
}

// View renders the registration form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Create Account"))
	sb.WriteString("\n\n")

	if m.done {
		sb.WriteString(okStyle.Render("Account created."))
		sb.WriteString("\n\n")
		sb.WriteString("Check your inbox for a verification email.\n")
		sb.WriteString(hintStyle.Render("Press any key to enter the verification code"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
	}

	labels := [fieldCount]string{"name", "email", "password", "company"}
	for i := range m.inputs {
		sb.WriteString(labelStyle.Render(labels[i]) + " " + m.inputs[i].View())
		sb.WriteString("\n\n")
	}

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n")
	}

	if m.submitting {
		sb.WriteString("Creating account...")
	} else {
		sb.WriteString(hintStyle.Render("Tab to switch fields | Enter to register | Esc to cancel"))
	}

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
