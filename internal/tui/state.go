package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"github.com/sant0-9/corpresearch/internal/agent"
	"github.com/sant0-9/corpresearch/internal/config"
	"github.com/sant0-9/corpresearch/internal/llm"
	"github.com/sant0-9/corpresearch/internal/role"
)

type state struct {
	// Config
	config     *config.Config
	needsSetup bool

	// Setup wizard state
	setupStep        int
	selectedProvider int
	apiKeyInput      textinput.Model

	// Settings
	settingsMode     string
	settingsSelected int

	// Session: the serialized plan and the attributed role. Owned here, the
	// router is stateless across calls.
	planText string
	role     role.Tag

	// Chat
	history      []message
	processing   bool
	spinnerFrame int

	// Input
	input textinput.Model

	// Provider
	provider      llm.Provider
	router        *agent.Router
	providerReady bool
	providerError error

	log *zap.Logger
}

type message struct {
	role    string
	content string
}

func newState(log *zap.Logger) *state {
	input := textinput.New()
	input.Placeholder = "Ask for an account plan, e.g. \"create an account plan for Acme\"..."
	input.CharLimit = 500
	input.Width = 60

	apiKey := textinput.New()
	apiKey.Placeholder = "Paste your API key here..."
	apiKey.EchoMode = textinput.EchoPassword
	apiKey.CharLimit = 200
	apiKey.Width = 50

	if log == nil {
		log = zap.NewNop()
	}

	return &state{
		input:       input,
		apiKeyInput: apiKey,
		log:         log,
	}
}
