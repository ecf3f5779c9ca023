package statusbar

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#FFFFFF"))

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#2563EB")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#374151")).
				Foreground(lipgloss.Color("#D1D5DB")).
				Padding(0, 1)

	userStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#34D399")).
			Padding(0, 1)

	notifyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#DC2626")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	statusTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#9CA3AF")).
			Padding(0, 1)

	errorTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(lipgloss.Color("#F87171")).
			Padding(0, 1)
)

// Tab identifies a top-level section.
type Tab string

const (
	TabTemplates Tab = "templates"
	TabPlans     Tab = "plans"
	TabSupport   Tab = "support"
	TabAccount   Tab = "account"
)

var tabs = []struct {
	label string
	tab   Tab
}{
	{"Templates", TabTemplates},
	{"Plans", TabPlans},
	{"Support", TabSupport},
	{"Account", TabAccount},
}

// Model is the status bar at the bottom of the screen.
type Model struct {
	width       int
	activeTab   Tab
	userName    string
	unreadCount int
	statusText  string
	statusIsErr bool
}

// New creates a new status bar.
func New() Model {
	return Model{activeTab: TabTemplates}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetActiveTab sets the highlighted section tab.
func (m *Model) SetActiveTab(t Tab) {
	m.activeTab = t
}

// SetUser sets the logged-in user's display name.
func (m *Model) SetUser(name string) {
	m.userName = name
}

// SetUnread sets the unread notification count.
func (m *Model) SetUnread(count int) {
	m.unreadCount = count
}

// SetStatus sets a transient status message.
func (m *Model) SetStatus(text string, isErr bool) {
	m.statusText = text
	m.statusIsErr = isErr
}

// Update is a no-op for the status bar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	var tabsStr string
	for _, t := range tabs {
		if t.tab == m.activeTab {
			tabsStr += activeTabStyle.Render(t.label)
		} else {
			tabsStr += inactiveTabStyle.Render(t.label)
		}
	}

	var right string
	if m.statusText != "" {
		if m.statusIsErr {
			right += errorTextStyle.Render(m.statusText)
		} else {
			right += statusTextStyle.Render(m.statusText)
		}
	}
	if m.unreadCount > 0 {
		right += notifyStyle.Render(fmt.Sprintf(" %d ", m.unreadCount))
	}
	if m.userName != "" {
		right += userStyle.Render(m.userName)
	} else {
		right += statusTextStyle.Render("L:login")
	}

	tabsWidth := lipgloss.Width(tabsStr)
	rightWidth := lipgloss.Width(right)
	gap := m.width - tabsWidth - rightWidth
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, tabsStr, mid, right)
}
