package tui

import "github.com/charmbracelet/lipgloss"

// truncate shortens text to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

var (
	// Colors
	colorPrimary   = lipgloss.Color("#00D4FF")
	colorSecondary = lipgloss.Color("#A855F7")
	colorSuccess   = lipgloss.Color("#10B981")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Section label
	styleLabel = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	// Focused section label
	styleLabelFocus = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Selected option chip
	styleSelected = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Notices
	styleNotice = lipgloss.NewStyle().
			Foreground(colorError)
)
