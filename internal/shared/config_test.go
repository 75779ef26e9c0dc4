package shared

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		config := DefaultConfig()

		if config.Database.Path != "./dvs.db" {
			t.Errorf("expected database path ./dvs.db, got %s", config.Database.Path)
		}

		if config.API.BaseURL != "http://localhost:5000" {
			t.Errorf("expected API base URL http://localhost:5000, got %s", config.API.BaseURL)
		}

		if config.Store.Currency != "KES" {
			t.Errorf("expected currency KES, got %s", config.Store.Currency)
		}

		if config.Store.WhatsAppPhone != "254702252415" {
			t.Errorf("expected WhatsApp phone 254702252415, got %s", config.Store.WhatsAppPhone)
		}
	})

	t.Run("CreateConfigFile", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		if err := CreateConfigFile(configPath); err != nil {
			t.Fatalf("failed to create config file: %v", err)
		}

		if _, err := os.Stat(configPath); err != nil {
			t.Fatalf("config file should exist: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load created config: %v", err)
		}

		defaultConfig := DefaultConfig()
		if config.Database.Path != defaultConfig.Database.Path {
			t.Errorf("created config database path doesn't match default")
		}

		err = CreateConfigFile(configPath)
		if err == nil {
			t.Fatal("creating config file again should fail")
		}
		if !strings.Contains(err.Error(), "already exists") {
			t.Errorf("unexpected error message: %v", err)
		}
		if strings.Contains(err.Error(), "%!w") {
			t.Errorf("error message contains a broken wrap verb: %v", err)
		}
	})

	t.Run("LoadConfig", func(t *testing.T) {
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.toml")

		testConfig := `[api]
base_url = "https://store.example.com"
timeout_seconds = 30
rate_limit = 2.5

[auth]
token_path = "/custom/token.json"

[store]
name = "Test Store"
currency = "USD"
whatsapp_phone = "15551234567"

[database]
path = "/custom/path.db"
max_open_conns = 20
max_idle_conns = 10
`
		if err := os.WriteFile(configPath, []byte(testConfig), 0644); err != nil {
			t.Fatalf("failed to write test config: %v", err)
		}

		config, err := LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if config.API.BaseURL != "https://store.example.com" {
			t.Errorf("expected custom base URL, got %s", config.API.BaseURL)
		}
		if config.API.RateLimit != 2.5 {
			t.Errorf("expected rate limit 2.5, got %v", config.API.RateLimit)
		}
		if config.Auth.TokenPath != "/custom/token.json" {
			t.Errorf("expected custom token path, got %s", config.Auth.TokenPath)
		}
		if config.Store.Currency != "USD" {
			t.Errorf("expected currency USD, got %s", config.Store.Currency)
		}
		if config.Database.MaxOpenConns != 20 {
			t.Errorf("expected 20 max open conns, got %d", config.Database.MaxOpenConns)
		}
	})

	t.Run("LoadConfig missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("TokenFile", func(t *testing.T) {
		auth := AuthConfig{TokenPath: "/custom/token.json"}
		if auth.TokenFile() != "/custom/token.json" {
			t.Errorf("expected explicit token path, got %s", auth.TokenFile())
		}

		auth = AuthConfig{}
		path := auth.TokenFile()
		if !strings.Contains(path, ".dvs") || !strings.HasSuffix(path, "token.json") {
			t.Errorf("expected default under ~/.dvs, got %s", path)
		}
	})
}
