package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("MYVET_SERVER", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ServerURL != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.ServerURL, DefaultServerURL)
	}
	if cfg.TriageTemplate != DefaultTriagePrompt {
		t.Error("TriageTemplate should default to the built-in prompt")
	}
}

func TestLoad_TOMLServerURL(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MYVET_SERVER", "")

	configDir := filepath.Join(home, ".config", "myvet")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	toml := []byte("server_url = \"https://clinic.example.com\"\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), toml, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "https://clinic.example.com" {
		t.Errorf("ServerURL = %q, want value from config.toml", cfg.ServerURL)
	}
}

func TestLoad_EnvOverridesTOML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".config", "myvet")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	toml := []byte("server_url = \"https://from-toml.example.com\"\n")
	if err := os.WriteFile(filepath.Join(configDir, "config.toml"), toml, 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("MYVET_SERVER", "https://from-env.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServerURL != "https://from-env.example.com" {
		t.Errorf("ServerURL = %q, env must win over config.toml", cfg.ServerURL)
	}
}

func TestLoad_CustomTriagePrompt(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("MYVET_SERVER", "")

	configDir := filepath.Join(home, ".config", "myvet")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	custom := "{{symptoms}} -- custom"
	if err := os.WriteFile(filepath.Join(configDir, "triage_prompt.txt"), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TriageTemplate != custom {
		t.Errorf("TriageTemplate = %q, want the override file contents", cfg.TriageTemplate)
	}
}
