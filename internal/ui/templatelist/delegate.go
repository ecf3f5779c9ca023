package templatelist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#828282"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#2563EB"))

	selectedDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CCCCCC"))

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2563EB")).
			Width(4).
			Align(lipgloss.Right)

	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D97706")).Bold(true)
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A")).Bold(true)
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
)

type Delegate struct{}

func (d Delegate) Height() int                             { return 2 }
func (d Delegate) Spacing() int                            { return 1 }
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d Delegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(TemplateItem)
	if !ok {
		return
	}

	idx := indexStyle.Render(fmt.Sprintf("%d.", item.Index+1))
	badge := statusBadge(item.Status)

	var title, desc string
	if index == m.Index() {
		title = selectedTitleStyle.Render(item.ItemTitle())
		desc = selectedDescStyle.Render(itemDesc(item))
	} else {
		title = titleStyle.Render(item.ItemTitle())
		desc = descStyle.Render(itemDesc(item))
	}

	fmt.Fprintf(w, "%s %s %s\n   %s", idx, badge, title, desc)
}

func itemDesc(item TemplateItem) string {
	desc := item.Subject
	if item.CompanyName != "" {
		if desc != "" {
			desc += " | "
		}
		desc += item.CompanyName
	}
	if !item.SubmittedAt.IsZero() {
		if desc != "" {
			desc += " | "
		}
		desc += render.TimeAgo(item.SubmittedAt)
	}
	return desc
}

func statusBadge(status string) string {
	switch status {
	case "approved":
		return approvedStyle.Render("[ok]")
	case "rejected":
		return rejectedStyle.Render("[no]")
	default:
		return pendingStyle.Render("[..]")
	}
}
