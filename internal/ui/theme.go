package ui

import "github.com/charmbracelet/lipgloss"

// Brand blue plus status colors shared across views.
var (
	brandBlue = lipgloss.Color("#2563EB")

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	MetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#828282"))

	AccentStyle = lipgloss.NewStyle().
			Foreground(brandBlue).
			Bold(true)

	PendingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D97706")).
			Bold(true)

	ApprovedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#16A34A")).
			Bold(true)

	RejectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#DC2626")).
			Bold(true)

	SelectedStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(brandBlue).
			PaddingLeft(1)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// StatusStyle returns the style for a review status value.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case "approved":
		return ApprovedStyle
	case "rejected":
		return RejectedStyle
	default:
		return PendingStyle
	}
}
