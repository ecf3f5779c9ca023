package account

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/auth"
	"github.com/talentwork128/mailvet/internal/ui/messages"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true).Padding(1, 0)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Width(10)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
)

// Model is the account view: profile details plus logout.
type Model struct {
	session *auth.Session
	width   int
	height  int
}

// New creates the account view.
func New(session *auth.Session) Model {
	return Model{session: session}
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
		case "x":
			if !m.session.LoggedIn() {
				return m, nil
			}
			session := m.session
			return m, func() tea.Msg {
				session.Logout(context.Background())
				return messages.LoggedOutMsg{}
			}
		}
	}
	return m, nil
}

// View renders the account details.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Account"))
	sb.WriteString("\n\n")

	user := m.session.CurrentUser
	if user == nil {
		sb.WriteString("Not signed in.\n\n")
		sb.WriteString(hintStyle.Render("Press L to sign in"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
	}

	sb.WriteString(labelStyle.Render("name") + valueStyle.Render(user.Name))
	sb.WriteString("\n")
	sb.WriteString(labelStyle.Render("email") + valueStyle.Render(user.Email))
	sb.WriteString("\n")
	if user.Company != "" {
		sb.WriteString(labelStyle.Render("company") + valueStyle.Render(user.Company))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("x to sign out | Esc to go back"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, sb.String())
}
