package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key,omitempty"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url,omitempty"`

	// SerpAPIKey enables web research grounding for plan generation.
	SerpAPIKey string `yaml:"serpapi_key,omitempty"`

	Debug bool `yaml:"debug,omitempty"`
}

// DefaultConfig picks groq when a key is available in the environment and
// falls back to the offline mock provider otherwise.
func DefaultConfig() *Config {
	cfg := &Config{
		Provider: "mock",
	}
	cfg.ApplyEnv()
	if cfg.APIKey != "" {
		cfg.Provider = "groq"
		cfg.Model = "llama-3.3-70b-versatile"
	}
	return cfg
}

// ApplyEnv overlays environment variables on the config. A .env file in the
// working directory is honored when present.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("GROQ_API_KEY"); v != "" && c.APIKey == "" {
		c.APIKey = v
	}
	if v := os.Getenv("SERPAPI_KEY"); v != "" && c.SerpAPIKey == "" {
		c.SerpAPIKey = v
	}
	if v := os.Getenv("CORPRESEARCH_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("CORPRESEARCH_MODEL"); v != "" {
		c.Model = v
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "corpresearch"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LogPath is where the rotating debug log lives.
func LogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "corpresearch.log"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return &cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
