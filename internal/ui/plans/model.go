package plans

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/talentwork128/mailvet/internal/cache"
	"github.com/talentwork128/mailvet/internal/plans"
	"github.com/talentwork128/mailvet/internal/ui/messages"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true).Padding(1, 0)
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
	priceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2563EB")).Bold(true)
	featureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	popularStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#2563EB")).Bold(true).Padding(0, 1)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 2)
	selectedBox  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#2563EB")).Padding(0, 2)
)

// Model is the pricing plan selection view.
type Model struct {
	selectedIdx int
	loggedIn    bool
	cache       *cache.DB
	width       int
	height      int
}

// New creates the plans view.
func New(db *cache.DB, loggedIn bool) Model {
	return Model{cache: db, loggedIn: loggedIn}
}

// SetSize sets the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// SetLoggedIn updates the auth state used by plan selection.
func (m *Model) SetLoggedIn(loggedIn bool) {
	m.loggedIn = loggedIn
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	all := plans.All()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "left", "k", "up":
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
		case "l", "right", "j", "down":
			if m.selectedIdx < len(all)-1 {
				m.selectedIdx++
			}
		case "enter":
			plan := all[m.selectedIdx]
			// The selection carries into the submit flow, surviving a
			// login detour for anonymous users.
			m.cache.SetState(cache.KeySelectedPlan, plan.ID)
			if !m.loggedIn {
				m.cache.SetState(cache.KeyRedirectAfterLogin, "submit")
				return m, func() tea.Msg {
					return messages.OpenLoginMsg{}
				}
			}
			return m, func() tea.Msg {
				return messages.OpenFormMsg{}
			}
		}
	}
	return m, nil
}

// View renders the plan cards side by side.
func (m Model) View() string {
	all := plans.All()
	cards := make([]string, 0, len(all))
	for i, p := range all {
		var sb strings.Builder
		if p.Popular {
			sb.WriteString(popularStyle.Render("POPULAR"))
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
		sb.WriteString(nameStyle.Render(p.Name))
		sb.WriteString("\n")
		sb.WriteString(priceStyle.Render(fmt.Sprintf("$%d/mo", p.Price)))
		sb.WriteString("\n")
		sb.WriteString(featureStyle.Render(fmt.Sprintf("%d emails/day", p.EmailsPerDay)))
		sb.WriteString("\n\n")
		for _, f := range p.Features {
			sb.WriteString(featureStyle.Render("- " + f))
			sb.WriteString("\n")
		}

		box := boxStyle
		if i == m.selectedIdx {
			box = selectedBox
		}
		cards = append(cards, box.Render(sb.String()))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Pricing Plans"),
		lipgloss.JoinHorizontal(lipgloss.Top, cards...),
		"",
		hintStyle.Render("h/l to choose | Enter to select and submit a template"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
