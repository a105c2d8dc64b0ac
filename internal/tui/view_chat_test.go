package tui

import (
	"strings"
	"testing"

	"github.com/sant0-9/corpresearch/internal/config"
)

func TestGetModelDisplayName(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{"offline ignores empty model", config.Config{Provider: "mock"}, "Offline"},
		{"groq llama", config.Config{Provider: "groq", Model: "llama-3.3-70b-versatile"}, "Llama 3.3 via groq"},
		{"openai", config.Config{Provider: "openai", Model: "gpt-4o-mini"}, "GPT-4o via openai"},
		{"ollama passthrough", config.Config{Provider: "ollama", Model: "qwen2.5:7b"}, "qwen2.5:7b via ollama"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &App{state: &state{config: &tt.cfg}}
			if got := a.getModelDisplayName(); got != tt.want {
				t.Errorf("getModelDisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrapLine(t *testing.T) {
	if got := wrapLine("aaa bbb ccc ddd", 7); got != "aaa bbb\nccc ddd" {
		t.Errorf("wrapLine = %q", got)
	}

	// Display width, not byte length: ten two-byte runes fit in 15 cells.
	wide := strings.Repeat("é", 5) + " " + strings.Repeat("é", 5)
	if got := wrapLine(wide, 15); strings.Contains(got, "\n") {
		t.Errorf("wrapLine wrapped text that fits: %q", got)
	}
}
