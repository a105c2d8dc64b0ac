package llm

import (
	"fmt"

	"github.com/sant0-9/corpresearch/internal/config"
)

// NewProvider creates a provider from config
func NewProvider(cfg *config.Config) (Provider, error) {
	switch cfg.Provider {
	case "mock":
		return NewMockProvider(), nil

	case "groq":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("groq requires an API key")
		}
		return NewGroqProvider(cfg.APIKey, cfg.Model), nil

	case "openai":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("openai requires an API key")
		}
		return NewOpenAIProvider(cfg.APIKey, cfg.Model), nil

	case "ollama":
		host := "http://localhost:11434"
		if cfg.BaseURL != "" {
			host = cfg.BaseURL
		}
		return NewOllamaProvider(host, cfg.Model), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Provider)
	}
}
