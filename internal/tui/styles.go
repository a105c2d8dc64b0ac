package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorPrimary   = lipgloss.Color("#1E88E5")
	colorSecondary = lipgloss.Color("#64B5F6")
	colorSuccess   = lipgloss.Color("#4CAF50")
	colorError     = lipgloss.Color("#EF4444")
	colorMuted     = lipgloss.Color("#6B7280")
	colorWhite     = lipgloss.Color("#F9FAFB")

	// Logo style
	styleLogo = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Subtitle
	styleSubtitle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Box
	styleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	// Status bar
	styleStatusBar = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleUserMsg = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleBotMsg = lipgloss.NewStyle().
			Foreground(colorWhite)

	styleSectionTitle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)
)
