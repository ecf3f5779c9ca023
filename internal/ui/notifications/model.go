package notifications

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/render"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true).Padding(1, 0)
	notifStyle     = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#1F2937")).Padding(0, 1)
	nameStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	unreadDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))

	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706")).Bold(true)
)

// Model is the review-status notification feed.
type Model struct {
	notifications []cache.Notification
	selectedIdx   int
	db            *cache.DB
	width         int
	height        int
}

// New creates a new notifications model.
func New(db *cache.DB) Model {
	return Model{db: db}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Load refreshes the notification list from the database.
func (m *Model) Load() {
	m.notifications = m.db.Notifications(50)
	if m.selectedIdx >= len(m.notifications) {
		m.selectedIdx = 0
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.selectedIdx < len(m.notifications)-1 {
				m.selectedIdx++
			}
		case "k", "up":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "enter":
			if m.selectedIdx >= 0 && m.selectedIdx < len(m.notifications) {
				n := m.notifications[m.selectedIdx]
				m.db.MarkNotificationRead(n.ID)
				m.notifications[m.selectedIdx].Read = true
			}
		}
	}
	return m, nil
}

// View renders the notification feed.
func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Notifications"))
	sb.WriteString("\n")

	if len(m.notifications) == 0 {
		sb.WriteString("\n  No notifications yet.\n")
		return sb.String()
	}

	for i, n := range m.notifications {
		var line strings.Builder

		if !n.Read {
			line.WriteString(unreadDotStyle.Render("* "))
		} else {
			line.WriteString("  ")
		}

		line.WriteString(nameStyle.Render(n.Title))
		line.WriteString(" ")
		line.WriteString(statusWord(n.NewStatus))
		line.WriteString(metaStyle.Render(" " + render.TimeAgo(time.Unix(n.CreatedAt, 0))))

		entry := line.String()
		if i == m.selectedIdx {
			entry = selectedStyle.Render(entry)
		} else {
			entry = notifStyle.Render(entry)
		}
		sb.WriteString(entry + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(metaStyle.Render("Enter to mark read | Esc to go back"))
	return sb.String()
}

// UnreadCount returns the number of unread notifications.
func (m Model) UnreadCount() int {
	count := 0
	for _, n := range m.notifications {
		if !n.Read {
			count++
		}
	}
	return count
}

func statusWord(status string) string {
	switch status {
	case "approved":
		return approvedStyle.Render("was approved")
	case "rejected":
		return rejectedStyle.Render("was rejected")
	default:
		return pendingStyle.Render("is pending review")
	}
}
