package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIPort != defaultAPIPort {
		t.Errorf("APIPort = %d, want %d", cfg.APIPort, defaultAPIPort)
	}
	if cfg.APIAddr != "127.0.0.1:3000" {
		t.Errorf("APIAddr = %q", cfg.APIAddr)
	}
	if cfg.QuotationsURL != defaultQuotationsURL || cfg.EventsURL != defaultEventsURL {
		t.Error("default source URLs not applied")
	}
	if cfg.FetchTimeout != defaultFetchTimeout {
		t.Errorf("FetchTimeout = %v, want %v", cfg.FetchTimeout, defaultFetchTimeout)
	}
	if cfg.SessionSecret != "" {
		t.Errorf("SessionSecret = %q, want empty", cfg.SessionSecret)
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("OPSBOARD_API_PORT", "4500")
	t.Setenv("OPSBOARD_QUOTATIONS_URL", "http://example.com/q.csv")
	t.Setenv("OPSBOARD_FETCH_TIMEOUT", "10s")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIPort != 4500 {
		t.Errorf("APIPort = %d, want 4500", cfg.APIPort)
	}
	if cfg.APIAddr != "127.0.0.1:4500" {
		t.Errorf("APIAddr = %q", cfg.APIAddr)
	}
	if cfg.QuotationsURL != "http://example.com/q.csv" {
		t.Errorf("QuotationsURL = %q", cfg.QuotationsURL)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", cfg.FetchTimeout)
	}
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := "api-port: 8080\nsession-secret: sekrit\nreload-interval: 1m\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.APIPort != 8080 || cfg.SessionSecret != "sekrit" {
		t.Errorf("config file values not applied: %+v", cfg)
	}
	if cfg.ReloadInterval != time.Minute {
		t.Errorf("ReloadInterval = %v, want 1m", cfg.ReloadInterval)
	}
	if cfg.ConfigPath != path {
		t.Errorf("ConfigPath = %q, want %q", cfg.ConfigPath, path)
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	t.Setenv("OPSBOARD_API_PORT", "70000")
	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml")); err == nil {
		t.Error("expected error for out-of-range port")
	}
}
