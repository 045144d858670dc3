package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const DefaultServerURL = "http://localhost:4000"

// DefaultTriagePrompt is the mustache template the triage command renders
// into the symptom description sent to the AI agent.
const DefaultTriagePrompt = `{{symptoms}}{{#species}}
Especie: {{species}}{{/species}}{{#age}}
Edad: {{age}}{{/age}}{{#context}}
Contexto: {{context}}{{/context}}`

type Config struct {
	ServerURL      string
	TriageTemplate string
}

type tomlConfig struct {
	ServerURL string `toml:"server_url"`
}

// Load reads config from ~/.config/myvet/, then lets the environment
// (including a .env file in the working directory) override the server URL.
// Missing or unreadable files fall back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		ServerURL:      DefaultServerURL,
		TriageTemplate: DefaultTriagePrompt,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil // Use defaults
	}

	configDir := filepath.Join(home, ".config", "myvet")
	tomlPath := filepath.Join(configDir, "config.toml")
	promptPath := filepath.Join(configDir, "triage_prompt.txt")

	if _, err := os.Stat(tomlPath); err == nil {
		var tc tomlConfig
		if _, err := toml.DecodeFile(tomlPath, &tc); err == nil && tc.ServerURL != "" {
			cfg.ServerURL = tc.ServerURL
		}
	}

	// If custom triage template exists, use it
	if data, err := os.ReadFile(promptPath); err == nil {
		cfg.TriageTemplate = string(data)
	}

	// .env is optional; a missing file is not an error
	_ = godotenv.Load()
	if url := os.Getenv("MYVET_SERVER"); url != "" {
		cfg.ServerURL = url
	}

	return cfg, nil
}

// DefaultDataPath is where the local store lives unless --data overrides it.
func DefaultDataPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "~"
	}
	return filepath.Join(home, ".config", "myvet", "myvet.db")
}
