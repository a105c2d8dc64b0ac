package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/sant0-9/corpresearch/internal/agent"
	"github.com/sant0-9/corpresearch/internal/config"
	"github.com/sant0-9/corpresearch/internal/export"
	"github.com/sant0-9/corpresearch/internal/generator"
	"github.com/sant0-9/corpresearch/internal/llm"
	"github.com/sant0-9/corpresearch/internal/plan"
	"github.com/sant0-9/corpresearch/internal/search"
)

type view int

const (
	viewWelcome view = iota
	viewSetup
	viewChat
	viewSettings
	viewHelp
)

type App struct {
	width    int
	height   int
	view     view
	state    *state
	quitting bool
}

func NewApp(log *zap.Logger) *App {
	s := newState(log)

	cfg, _ := config.Load()
	if cfg == nil {
		s.config = config.DefaultConfig()
		// First run: only ask for setup when the environment gave us
		// nothing and we would silently fall back to canned output.
		s.needsSetup = s.config.Provider == "mock"
	} else {
		s.config = cfg
	}

	return &App{
		view:  viewWelcome,
		state: s,
	}
}

func (a *App) Init() tea.Cmd {
	if a.state.needsSetup {
		a.view = viewSetup
		return tea.Batch(tea.WindowSize(), textinput.Blink)
	}

	return tea.Batch(
		tea.WindowSize(),
		textinput.Blink,
		a.connectProvider(),
	)
}

// connectProvider builds the provider, pings it, and wires the router.
func (a *App) connectProvider() tea.Cmd {
	return func() tea.Msg {
		provider, err := llm.NewProvider(a.state.config)
		if err != nil {
			return providerErrorMsg{err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := provider.Ping(ctx); err != nil {
			return providerErrorMsg{err}
		}

		return providerReadyMsg{provider}
	}
}

func (a *App) buildRouter(provider llm.Provider) *agent.Router {
	svc := generator.New(provider, a.state.config.Model, a.state.log)
	if a.state.config.SerpAPIKey != "" {
		svc = svc.WithSearch(search.NewClient(a.state.config.SerpAPIKey))
	}
	return agent.NewRouter(svc, a.state.log)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd := a.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case setupCompleteMsg:
		a.state.needsSetup = false
		a.view = viewWelcome
		return a, a.connectProvider()

	case setupErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case providerReadyMsg:
		a.state.providerReady = true
		a.state.provider = msg.provider
		a.state.router = a.buildRouter(msg.provider)
		a.state.input.Focus()
		return a, textinput.Blink

	case providerErrorMsg:
		a.state.providerError = msg.error
		return a, nil

	case routeResultMsg:
		a.state.processing = false
		if msg.err != nil {
			// All-or-nothing: the session keeps its previous plan and role.
			a.state.history = append(a.state.history, message{
				role:    "assistant",
				content: "An error occurred: " + msg.err.Error(),
			})
			return a, nil
		}
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: msg.outcome.Message,
		})
		if msg.outcome.Changed {
			a.state.planText = msg.outcome.Document
		}
		if msg.outcome.Role != "" {
			a.state.role = msg.outcome.Role
		}
		return a, nil

	case tickMsg:
		if a.state.processing {
			a.state.spinnerFrame++
			return a, tickCmd()
		}
		return a, nil
	}

	// Update text inputs based on view
	if (a.view == viewSetup && a.state.setupStep == 1) ||
		(a.view == viewSettings && a.state.settingsMode == "apikey") {
		var cmd tea.Cmd
		a.state.apiKeyInput, cmd = a.state.apiKeyInput.Update(msg)
		cmds = append(cmds, cmd)
	} else if a.view == viewWelcome || a.view == viewChat {
		var cmd tea.Cmd
		a.state.input, cmd = a.state.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		if a.view == viewSettings || a.view == viewHelp {
			a.view = viewChat
			if len(a.state.history) == 0 {
				a.view = viewWelcome
			}
			return nil
		}
		if a.view == viewSetup && a.state.setupStep == 1 {
			a.state.setupStep = 0
			a.state.apiKeyInput.Reset()
			return nil
		}
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Enter):
		if (a.view == viewWelcome || a.view == viewChat) && a.state.providerReady && !a.state.processing {
			return a.handleInput()
		}
	}

	switch a.view {
	case viewSetup:
		return a.handleSetupKey(msg)
	case viewSettings:
		return a.handleSettingsKey(msg)
	}

	return nil
}

func (a *App) handleInput() tea.Cmd {
	input := strings.TrimSpace(a.state.input.Value())
	if input == "" {
		return nil
	}
	a.state.input.Reset()

	if strings.HasPrefix(input, "/") {
		return a.handleCommand(strings.ToLower(input))
	}

	a.state.history = append(a.state.history, message{role: "user", content: input})
	a.state.processing = true
	a.view = viewChat
	return tea.Batch(a.routeUtterance(input), tickCmd())
}

func (a *App) handleCommand(cmd string) tea.Cmd {
	switch cmd {
	case "/help", "/h":
		a.view = viewHelp
	case "/settings", "/s":
		a.view = viewSettings
		a.state.settingsMode = ""
	case "/clear", "/c":
		// Clearing destroys the whole session: chat, plan, and role.
		a.state.history = nil
		a.state.planText = ""
		a.state.role = ""
		a.view = viewWelcome
	case "/export", "/e":
		a.exportPlan()
	case "/quit", "/q":
		a.quitting = true
		return tea.Quit
	}
	return nil
}

func (a *App) exportPlan() {
	if a.state.planText == "" {
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: "There is no account plan to export yet.",
		})
		return
	}

	const path = "account_plan.pdf"
	if err := export.Save(plan.Parse(a.state.planText), path); err != nil {
		a.state.log.Error("pdf export failed", zap.Error(err))
		a.state.history = append(a.state.history, message{
			role:    "assistant",
			content: "Export failed: " + err.Error(),
		})
		return
	}
	a.state.history = append(a.state.history, message{
		role:    "assistant",
		content: "Saved the account plan to " + path + ".",
	})
	a.view = viewChat
}

// routeUtterance snapshots the session and runs the single routed operation.
func (a *App) routeUtterance(input string) tea.Cmd {
	router := a.state.router
	doc := a.state.planText
	currentRole := a.state.role

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		out, err := router.Route(ctx, input, doc, currentRole)
		return routeResultMsg{outcome: out, err: err}
	}
}

func (a *App) handleSetupKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.setupStep {
	case 0: // Provider selection
		switch msg.String() {
		case "up", "k":
			if a.state.selectedProvider > 0 {
				a.state.selectedProvider--
			}
		case "down", "j":
			if a.state.selectedProvider < len(config.Providers)-1 {
				a.state.selectedProvider++
			}
		case "enter":
			provider := config.Providers[a.state.selectedProvider]
			a.state.config.Provider = provider.ID
			a.state.config.Model = provider.DefaultModel

			if provider.NeedsAPIKey && a.state.config.APIKey == "" {
				a.state.setupStep = 1
				a.state.apiKeyInput.Focus()
				return textinput.Blink
			}
			return a.finishSetup()
		}

	case 1: // API key entry
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			return a.finishSetup()
		}
	}

	return nil
}

func (a *App) handleSettingsKey(msg tea.KeyMsg) tea.Cmd {
	switch a.state.settingsMode {
	case "provider":
		switch msg.String() {
		case "up", "k":
			if a.state.settingsSelected > 0 {
				a.state.settingsSelected--
			}
		case "down", "j":
			if a.state.settingsSelected < len(config.Providers)-1 {
				a.state.settingsSelected++
			}
		case "enter":
			p := config.Providers[a.state.settingsSelected]
			a.state.config.Provider = p.ID
			a.state.config.Model = p.DefaultModel
			a.state.settingsMode = ""
			a.state.providerReady = false
			if err := a.state.config.Save(); err != nil {
				a.state.providerError = err
				return nil
			}
			return a.connectProvider()
		}
	case "apikey":
		if msg.String() == "enter" {
			a.state.config.APIKey = a.state.apiKeyInput.Value()
			a.state.apiKeyInput.Reset()
			a.state.settingsMode = ""
			a.state.providerReady = false
			if err := a.state.config.Save(); err != nil {
				a.state.providerError = err
				return nil
			}
			return a.connectProvider()
		}
	default:
		switch msg.String() {
		case "p":
			a.state.settingsMode = "provider"
			a.state.settingsSelected = 0
		case "k":
			a.state.settingsMode = "apikey"
			a.state.apiKeyInput.Focus()
			return textinput.Blink
		}
	}
	return nil
}

func (a *App) finishSetup() tea.Cmd {
	return func() tea.Msg {
		if err := a.state.config.Save(); err != nil {
			return setupErrorMsg{err}
		}
		return setupCompleteMsg{}
	}
}

type setupCompleteMsg struct{}
type setupErrorMsg struct{ error }
type providerReadyMsg struct{ provider llm.Provider }
type providerErrorMsg struct{ error }

type routeResultMsg struct {
	outcome *agent.Outcome
	err     error
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewWelcome:
		return a.renderWelcome()
	case viewSetup:
		return a.renderSetup()
	case viewChat:
		return a.renderChat()
	case viewSettings:
		return a.renderSettings()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderWelcome()
	}
}
