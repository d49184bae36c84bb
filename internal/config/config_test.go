package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shortgen/internal/config"
)

func TestLoadDefaultsWhenNoFileExists(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("SHORTGEN_API_URL", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Fatalf("unexpected base url: %q", cfg.API.BaseURL)
	}
	if cfg.Poll.Interval != 3 || cfg.Poll.ErrorRetryInterval != 5 {
		t.Fatalf("unexpected poll cadence: %d/%d", cfg.Poll.Interval, cfg.Poll.ErrorRetryInterval)
	}
	if cfg.Poll.MaxWait != 0 {
		t.Fatalf("unexpected max wait: %d", cfg.Poll.MaxWait)
	}
	if !cfg.Cache.Enabled {
		t.Fatal("expected cache enabled by default")
	}
	wantCache := filepath.Join(tempHome, ".cache", "shortgen", "projects.db")
	if cfg.Cache.Path != wantCache {
		t.Fatalf("unexpected cache path: got %q want %q", cfg.Cache.Path, wantCache)
	}
	if cfg.Notifications.NtfyTopic != "" {
		t.Fatalf("expected no ntfy topic by default, got %q", cfg.Notifications.NtfyTopic)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadParsesFileAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("SHORTGEN_API_URL", "")

	path := filepath.Join(t.TempDir(), "config.toml")
	content := strings.Join([]string{
		`[api]`,
		`base_url = "http://backend.lan:9000/"`,
		``,
		`[poll]`,
		`interval = 10`,
		`max_wait = 600`,
		``,
		`[cache]`,
		`path = "~/snapshots.db"`,
		``,
		`[logging]`,
		`format = "JSON"`,
		`level = "DEBUG"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.API.BaseURL != "http://backend.lan:9000" {
		t.Fatalf("trailing slash not trimmed: %q", cfg.API.BaseURL)
	}
	if cfg.Poll.Interval != 10 {
		t.Fatalf("interval = %d", cfg.Poll.Interval)
	}
	if cfg.Poll.ErrorRetryInterval != 5 {
		t.Fatalf("error retry not defaulted: %d", cfg.Poll.ErrorRetryInterval)
	}
	if cfg.Cache.Path != filepath.Join(tempHome, "snapshots.db") {
		t.Fatalf("tilde not expanded: %q", cfg.Cache.Path)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not lowercased: %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHORTGEN_API_URL", "https://remote.example.com/")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.API.BaseURL != "https://remote.example.com" {
		t.Fatalf("env override not applied: %q", cfg.API.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"bad scheme", func(c *config.Config) { c.API.BaseURL = "ftp://host" }},
		{"no host", func(c *config.Config) { c.API.BaseURL = "http://" }},
		{"max wait below interval", func(c *config.Config) {
			c.Poll.Interval = 10
			c.Poll.MaxWait = 5
		}},
		{"cache enabled without path", func(c *config.Config) {
			c.Cache.Enabled = true
			c.Cache.Path = ""
		}},
		{"unknown log level", func(c *config.Config) { c.Logging.Level = "verbose" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSampleWritesParsableFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to exist")
	}
	if cfg.API.BaseURL == "" {
		t.Fatal("expected defaults to survive sample load")
	}
}
