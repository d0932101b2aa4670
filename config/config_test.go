package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := writeConfig(t, "gemini:\n  apiKey: from-yaml\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Gemini.ApiKey != "from-yaml" {
		t.Errorf("Expected apiKey from yaml, got %q", cfg.Gemini.ApiKey)
	}
	if cfg.Gemini.Model != DefaultGeminiModel {
		t.Errorf("Expected default model, got %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Retries != 3 || cfg.Gemini.MaxChars != 6000 {
		t.Errorf("Unexpected retry defaults: retries=%d maxChars=%d", cfg.Gemini.Retries, cfg.Gemini.MaxChars)
	}
	if cfg.Delay() != 2*time.Second {
		t.Errorf("Expected 2s delay, got %v", cfg.Delay())
	}
	if cfg.Leetcode.Endpoint != DefaultLeetcodeURL || cfg.Leetcode.RecentAcLimit != 15 {
		t.Errorf("Unexpected leetcode defaults: %+v", cfg.Leetcode)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("Expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadConfigEnvOverridesKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "from-env")
	path := writeConfig(t, "gemini:\n  apiKey: from-yaml\n  delaySeconds: 0.5\n  retries: 5\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Gemini.ApiKey != "from-env" {
		t.Errorf("Expected env key to win, got %q", cfg.Gemini.ApiKey)
	}
	if cfg.Gemini.Retries != 5 {
		t.Errorf("Expected 5 retries, got %d", cfg.Gemini.Retries)
	}
	if cfg.Delay() != 500*time.Millisecond {
		t.Errorf("Expected 500ms delay, got %v", cfg.Delay())
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("Expected error for invalid yaml")
	}
}

func TestLoadConfigClampsRetries(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	path := writeConfig(t, "gemini:\n  retries: 50\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Gemini.MaxRetries != DefaultMaxRetries {
		t.Errorf("Expected default maxRetries, got %d", cfg.Gemini.MaxRetries)
	}
	if cfg.Gemini.Retries != DefaultMaxRetries {
		t.Errorf("Expected retries clamped to %d, got %d", DefaultMaxRetries, cfg.Gemini.Retries)
	}
}
