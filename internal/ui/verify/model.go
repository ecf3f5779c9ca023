package verify

import (
	"context"
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
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
)

// Model is the email verification view. The token comes from the emailed
// link; both token and email are required by the endpoint.
type Model struct {
	tokenInput textinput.Model
	emailInput textinput.Model
	focusIndex int
	err        string
	info       string
	submitting bool
	session    *auth.Session
	width      int
	height     int
}

// New creates a verification form, prefilled with the known email.
func New(session *auth.Session, email string) Model {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "verification token"
	tokenInput.Focus()
	tokenInput.Width = 40

	emailInput := textinput.New()
	emailInput.Placeholder = "you@company.com"
	emailInput.Width = 40
	emailInput.SetValue(email)

	return Model{
		tokenInput: tokenInput,
		emailInput: emailInput,
		session:    session,
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
				m.tokenInput.Blur()
				m.emailInput.Focus()
			} else {
				m.focusIndex = 0
				m.emailInput.Blur()
				m.tokenInput.Focus()
			}
			return m, nil
		case "ctrl+r":
			email := strings.TrimSpace(m.emailInput.Value())
			if email == "" {
				m.err = "Email required to resend"
				return m, nil
			}
			m.info = ""
			session := m.session
			return m, func() tea.Msg {
				ok := session.ResendVerification(context.Background(), email)
				return messages.ResendResultMsg{OK: ok}
			}
		case "enter":
			if m.submitting {
				return m, nil
			}
			token := strings.TrimSpace(m.tokenInput.Value())
			email := strings.TrimSpace(m.emailInput.Value())
			if token == "" || email == "" {
				m.err = "Token and email required"
				return m, nil
			}
			m.submitting = true
			m.err = ""
			session := m.session
			return m, func() tea.Msg {
				ok := session.VerifyEmail(context.Background(), token, email)
				return messages.VerifyResultMsg{OK: ok, User: session.CurrentUser}
			}
		}

	case messages.VerifyResultMsg:
		m.submitting = false
		if !msg.OK {
			m.err = "Verification failed. The token may be invalid or expired."
			return m, nil
		}
		return m, nil

	case messages.ResendResultMsg:
		if msg.OK {
			m.info = "Verification email sent."
		} else {
			m.err = "Could not resend verification email."
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.tokenInput, cmd = m.tokenInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

// View renders the verification form.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Verify Email"))
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Token:"))
	sb.WriteString("\n")
	sb.WriteString(m.tokenInput.View())
	sb.WriteString("\n\n")
	sb.WriteString(labelStyle.Render("Email:"))
	sb.WriteString("\n")
	sb.WriteString(m.emailInput.View())
	sb.WriteString("\n\n")

	if m.err != "" {
		sb.WriteString(errorStyle.Render(m.err))
		sb.WriteString("\n\n")
	}
	if m.info != "" {
		sb.WriteString(okStyle.Render(m.info))
		sb.WriteString("\n\n")
	}

	if m.submitting {
		sb.WriteString("Verifying...")
	} else {
		sb.WriteString(hintStyle.Render("Enter to verify | Ctrl+R to resend email | Esc to cancel"))
	}

	content := sb.String()
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
