package login

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/auth"
	"github.com/talentwork128/mailvet/internal/ui/messages"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true).Padding(1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	focusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB"))
)

// Model is the login form view.
type Model struct {
	emailInput    textinput.Model
	passwordInput textinput.Model
	focusIndex    int
	err           string
	submitting    bool
	session       *auth.Session
	width         int
	height        int
}

// New creates a new login form.
func New(session *auth.Session) Model {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@company.com"
	emailInput.Focus()
	emailInput.Width = 40

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.Width = 40

	return Model{
		emailInput:    emailInput,
		passwordInput: passwordInput,
		session:       session,
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
		switch msg.String() {
		case "tab", "shift+tab":
			if m.focusIndex == 0 {
				m.focusIndex = 1
				m.emailInput.Blur()
				m.passwordInput.Focus()
			} else {
				m.focusIndex = 0
				m.passwordInput.Blur()
				m.emailInput.Focus()
			}
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			email := strings.TrimSpace(m.emailInput.Value())
			password := m.passwordInput.Value()
			if email == "" || password == "" {
				m.err = "Email and password required"
				return m, nil
			}
			m.submitting = true
			m.err = ""
			session := m.session
			return m, func() tea.Msg {
				ok, err := session.Login(context.Background(), email, password)
				if errors.Is(err, auth.ErrEmailNotVerified) {
					return messages.LoginResultMsg{Unverified: true, Email: email}
				}
				if !ok {
					return messages.LoginResultMsg{}
				}
				return messages.LoginResultMsg{OK: true, Email: email, User: session.CurrentUser}
			}
		case "ctrl+r":
			return m, func() tea.Msg { return messages.OpenRegisterMsg{} }
		}

	case messages.LoginResultMsg:
		m.submitting = false
		if msg.Unverified {
			m.err = "Please verify your email address before logging in."
			return m, nil
		}
		if !msg.OK {
			m.err = "Invalid email or password"
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.emailInput, cmd = m.emailInput.Update(msg)
	} else {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	}
	return m, cmd
}

// View renders the login form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Sign In"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Email:"))
	sb.WriteString("\n")
	sb.WriteString(m.emailInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Password:"))
	sb.WriteString("\n")
	sb.WriteString(m.passwordInput.View())
	sb.WriteString("\n\n")

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n\n")
	}

	if m.submitting {
		sb.WriteString("Signing in...")
	} else {
		sb.WriteString(focusStyle.Render("Enter") + " to sign in, " +
			focusStyle.Render("Esc") + " to cancel")
		sb.WriteString("\n")
		sb.WriteString(hintStyle.Render("No account? Press Ctrl+R to register"))
	}

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
