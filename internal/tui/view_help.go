package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	commands := []string{
		"  /export, /e    Save the plan as a PDF",
		"  /clear, /c     Clear the chat and plan",
		"  /settings, /s  Open settings",
		"  /help, /h      Show this help",
		"  /quit, /q      Quit corpresearch",
	}

	commandsBox := styleBox.
		Width(50).
		Render(strings.Join(commands, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, commandsBox))
	b.WriteString("\n\n")

	examples := []string{
		"  create an account plan for Acme",
		"  I'm a student, make a plan for Globex",
		"  update the competitors section",
		"  as a sales rep, what opportunities are there?",
	}

	examplesTitle := styleSubtitle.Render("Things to try")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, examplesTitle))
	b.WriteString("\n\n")

	examplesBox := styleBox.
		Width(50).
		Render(strings.Join(examples, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, examplesBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
