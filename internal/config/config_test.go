package config

import "testing"

func TestDefaultConfigOffline(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("CORPRESEARCH_PROVIDER", "")
	t.Setenv("CORPRESEARCH_MODEL", "")

	cfg := DefaultConfig()
	if cfg.Provider != "mock" {
		t.Errorf("provider = %q, want mock without a key", cfg.Provider)
	}
}

func TestDefaultConfigWithGroqKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_test")
	t.Setenv("CORPRESEARCH_PROVIDER", "")
	t.Setenv("CORPRESEARCH_MODEL", "")

	cfg := DefaultConfig()
	if cfg.Provider != "groq" {
		t.Errorf("provider = %q, want groq", cfg.Provider)
	}
	if cfg.APIKey != "gsk_test" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.Model == "" {
		t.Error("expected a default model")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_env")
	t.Setenv("SERPAPI_KEY", "serp_env")
	t.Setenv("CORPRESEARCH_PROVIDER", "ollama")
	t.Setenv("CORPRESEARCH_MODEL", "llama3")

	cfg := &Config{Provider: "mock"}
	cfg.ApplyEnv()

	if cfg.APIKey != "gsk_env" {
		t.Errorf("api key = %q", cfg.APIKey)
	}
	if cfg.SerpAPIKey != "serp_env" {
		t.Errorf("serpapi key = %q", cfg.SerpAPIKey)
	}
	if cfg.Provider != "ollama" {
		t.Errorf("provider = %q", cfg.Provider)
	}
	if cfg.Model != "llama3" {
		t.Errorf("model = %q", cfg.Model)
	}
}

func TestApplyEnvKeepsExplicitKey(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "gsk_env")
	t.Setenv("CORPRESEARCH_PROVIDER", "")
	t.Setenv("CORPRESEARCH_MODEL", "")

	cfg := &Config{Provider: "groq", APIKey: "gsk_file"}
	cfg.ApplyEnv()

	if cfg.APIKey != "gsk_file" {
		t.Errorf("api key = %q, file value must win", cfg.APIKey)
	}
}

func TestGetProvider(t *testing.T) {
	if p := GetProvider("groq"); p == nil || p.ID != "groq" {
		t.Errorf("GetProvider(groq) = %+v", p)
	}
	if p := GetProvider("nope"); p != nil {
		t.Errorf("GetProvider(nope) = %+v, want nil", p)
	}
}
