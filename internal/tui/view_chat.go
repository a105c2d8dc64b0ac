package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/sant0-9/corpresearch/internal/plan"
	"github.com/sant0-9/corpresearch/internal/role"
)

// Loading messages shown while the routed operation runs
var loadingMessages = []string{
	"Thinking...",
	"Researching...",
	"Drafting sections...",
	"Reading the plan...",
	"Connecting dots...",
}

var spinnerFrames = []string{"|", "/", "-", "\\"}

// renderChat draws the two-pane layout: conversation on the left, the
// current account plan on the right.
func (a *App) renderChat() string {
	leftWidth := a.width * 55 / 100
	rightWidth := a.width - leftWidth - 1
	if leftWidth < 30 {
		leftWidth = a.width
		rightWidth = 0
	}

	paneHeight := a.height - 1

	left := a.renderChatPane(leftWidth, paneHeight)
	if rightWidth <= 0 {
		return left
	}
	right := a.renderPlanPane(rightWidth, paneHeight)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	status := a.renderStatusBar()
	return lipgloss.JoinVertical(lipgloss.Left, panes, status)
}

func (a *App) renderChatPane(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("CorpResearch AI")
	b.WriteString(title)
	b.WriteString("\n\n")

	// Messages, newest last; keep only what fits.
	var lines []string
	for _, msg := range a.state.history {
		wrapped := wrapText(msg.content, width-6)
		for i, line := range strings.Split(wrapped, "\n") {
			prefix := "  "
			if msg.role == "user" && i == 0 {
				prefix = "> "
			}
			if msg.role == "user" {
				lines = append(lines, styleUserMsg.Render(prefix+line))
			} else {
				lines = append(lines, styleBotMsg.Render(prefix+line))
			}
		}
		lines = append(lines, "")
	}

	if a.state.processing {
		spinner := spinnerFrames[a.state.spinnerFrame%len(spinnerFrames)]
		msg := loadingMessages[(a.state.spinnerFrame/6)%len(loadingMessages)]
		lines = append(lines, lipgloss.NewStyle().
			Foreground(colorPrimary).
			Render(fmt.Sprintf("%s %s", spinner, msg)))
	}

	// Space reserved: title (2), input (3), trailing line.
	available := height - 6
	if available < 3 {
		available = 3
	}
	if len(lines) > available {
		lines = lines[len(lines)-available:]
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString(strings.Repeat("\n", available-len(lines)+1))

	inputBox := styleBox.
		Width(width - 4).
		BorderForeground(colorSecondary).
		Render(a.state.input.View())
	b.WriteString(inputBox)

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (a *App) renderPlanPane(width, height int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		Render("Generated Account Plan")
	b.WriteString(title)
	b.WriteString("\n\n")

	if a.state.planText == "" {
		b.WriteString(styleSubtitle.Render("Your account plan will appear here\nafter you request one."))
	} else {
		p := plan.Parse(a.state.planText)
		for _, s := range p.Sections() {
			b.WriteString(styleSectionTitle.Render(s.Title))
			b.WriteString("\n")
			content := s.Content
			if content == "" {
				content = "-"
			}
			b.WriteString(wrapText(content, width-4))
			b.WriteString("\n\n")
		}
	}

	body := b.String()

	// Clip to the pane height.
	bodyLines := strings.Split(body, "\n")
	if len(bodyLines) > height {
		bodyLines = bodyLines[:height-1]
		bodyLines = append(bodyLines, styleSubtitle.Render("... (/export for the full plan)"))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(bodyLines, "\n"))
}

func (a *App) renderStatusBar() string {
	parts := []string{}
	if a.state.role != "" {
		parts = append(parts, "Role: "+role.Display(a.state.role))
	}
	parts = append(parts, a.getModelDisplayName())
	parts = append(parts, "/export  /clear  /help")
	return styleStatusBar.Render(strings.Join(parts, "  |  "))
}

// getModelDisplayName returns a friendly model name for display
func (a *App) getModelDisplayName() string {
	if a.state.config == nil {
		return ""
	}
	model := a.state.config.Model
	provider := a.state.config.Provider
	if provider == "mock" {
		return "Offline"
	}

	displayModel := model
	switch {
	case strings.Contains(model, "llama-3.3"):
		displayModel = "Llama 3.3"
	case strings.Contains(model, "llama-3.1"):
		displayModel = "Llama 3.1"
	case strings.Contains(model, "mixtral"):
		displayModel = "Mixtral"
	case strings.Contains(model, "gpt-4o"):
		displayModel = "GPT-4o"
	case strings.Contains(model, "gpt-4"):
		displayModel = "GPT-4"
	}

	if provider != "" && !strings.Contains(strings.ToLower(displayModel), strings.ToLower(provider)) {
		return fmt.Sprintf("%s via %s", displayModel, provider)
	}
	return displayModel
}

// wrapText wraps text to fit within maxWidth, preserving words
func wrapText(text string, maxWidth int) string {
	if maxWidth <= 0 {
		maxWidth = 60
	}

	var result strings.Builder
	for i, paragraph := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		result.WriteString(wrapLine(paragraph, maxWidth))
	}
	return result.String()
}

func wrapLine(text string, maxWidth int) string {
	if runewidth.StringWidth(text) <= maxWidth {
		return text
	}

	var result strings.Builder
	words := strings.Fields(text)
	lineLen := 0

	for i, word := range words {
		w := runewidth.StringWidth(word)
		if i > 0 {
			if lineLen+1+w > maxWidth {
				result.WriteString("\n")
				lineLen = 0
			} else {
				result.WriteString(" ")
				lineLen++
			}
		}
		result.WriteString(word)
		lineLen += w
	}

	return result.String()
}
