package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/api"
	"github.com/talentwork128/mailvet/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	metaStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))

	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706")).Bold(true)
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
)

// Model renders a template's metadata and its HTML body as terminal text.
type Model struct {
	template api.Template
	viewport viewport.Model
	width    int
	height   int
}

// New creates a preview for the given template.
func New(t api.Template) Model {
	return Model{
		template: t,
		viewport: viewport.New(0, 0),
	}
}

// SetSize sets the viewport dimensions and re-renders the content.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h - 7
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.viewport.SetContent(render.ToText(m.template.Content, w-4))
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the preview.
func (m Model) View() string {
	t := m.template
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(t.Title))
	sb.WriteString("  ")
	sb.WriteString(statusLabel(t.Status))
	sb.WriteString("\n")
	sb.WriteString(metaStyle.Render("Subject: " + t.Subject))
	sb.WriteString("\n")
	sb.WriteString(metaStyle.Render(fmt.Sprintf("%s | %s | %s",
		t.CompanyName, t.CompanyLocation, render.TimeAgo(t.SubmittedAt))))
	sb.WriteString("\n")
	if t.CompanyWebsite != "" || t.ContactPhone != "" {
		sb.WriteString(metaStyle.Render(strings.TrimSpace(t.CompanyWebsite + "  " + t.ContactPhone)))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(m.viewport.View())
	sb.WriteString("\n")
	sb.WriteString(hintStyle.Render("j/k to scroll | Esc to go back"))

	return sb.String()
}

func statusLabel(status string) string {
	switch status {
	case "approved":
		return approvedStyle.Render("APPROVED")
	case "rejected":
		return rejectedStyle.Render("REJECTED")
	default:
		return pendingStyle.Render("PENDING")
	}
}
