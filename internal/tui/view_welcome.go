package tui

import "github.com/charmbracelet/lipgloss"

const logo = `
 ██████╗ ██████╗ ██████╗ ██████╗
██╔════╝██╔═══██╗██╔══██╗██╔══██╗
██║     ██║   ██║██████╔╝██████╔╝
██║     ██║   ██║██╔══██╗██╔═══╝
╚██████╗╚██████╔╝██║  ██║██║
 ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚═╝
`

func (a *App) renderWelcome() string {
	logoRendered := styleLogo.Render(logo)

	subtitle := styleSubtitle.Render("CorpResearch - Company Research Chatbot")

	hint := "\nTell me who you are and which company to research,\ne.g. \"I'm an investor, create an account plan for Acme\""
	if a.state.providerError != nil {
		hint = "\nProvider error: " + a.state.providerError.Error() + "\nUse /settings to fix the configuration"
	} else if !a.state.providerReady {
		hint = "\nConnecting to provider..."
	}
	instructions := styleSubtitle.Render(hint)

	inputBox := styleBox.
		Width(min(70, a.width-4)).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())

	statusBar := styleStatusBar.Render("[Enter] Submit  [Esc] Quit  /help for commands")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		logoRendered,
		subtitle,
		instructions,
		"",
		inputBox,
	)

	mainArea := lipgloss.Place(
		a.width,
		a.height-2,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)

	statusLine := lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, mainArea, statusLine)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
