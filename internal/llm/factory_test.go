package llm

import (
	"testing"

	"github.com/sant0-9/corpresearch/internal/config"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantName string
		wantErr  bool
	}{
		{"mock", config.Config{Provider: "mock"}, "mock", false},
		{"groq", config.Config{Provider: "groq", APIKey: "gsk_x"}, "groq", false},
		{"groq without key", config.Config{Provider: "groq"}, "", true},
		{"openai", config.Config{Provider: "openai", APIKey: "sk_x"}, "openai", false},
		{"openai without key", config.Config{Provider: "openai"}, "", true},
		{"ollama needs no key", config.Config{Provider: "ollama", Model: "llama3"}, "ollama", false},
		{"unknown", config.Config{Provider: "bedrock"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProvider(&tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if p.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", p.Name(), tt.wantName)
			}
		})
	}
}
