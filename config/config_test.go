package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Todoist.RESTURL != "https://api.todoist.com/rest/v2" || cfg.Todoist.SyncURL != "https://api.todoist.com/sync/v9" {
		t.Errorf("unexpected urls: %+v", cfg.Todoist)
	}
	if cfg.Todoist.TokenEnv != "TODOIST_API_TOKEN" {
		t.Errorf("unexpected token env %q", cfg.Todoist.TokenEnv)
	}
	if cfg.Todoist.Timeout != 15*time.Second || cfg.Credential.LeaseTimeout != 5*time.Second {
		t.Errorf("unexpected timeouts: %s %s", cfg.Todoist.Timeout, cfg.Credential.LeaseTimeout)
	}
	if cfg.Logger.Level != "warn" || cfg.Timezone != "Local" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
todoist:
  rest_url: http://localhost:8080/rest/v2/
  requests_per_minute: 50
credential:
  lease_command: vault-lease ${TD_TEST_VAULT_ROLE}
timezone: Europe/Berlin
`)
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), yaml, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TD_TODOIST_TIMEOUT", "30s")
	t.Setenv("TD_TEST_VAULT_ROLE", "todoist-reader")

	cfg, err := load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Todoist.RESTURL != "http://localhost:8080/rest/v2" {
		t.Errorf("trailing slash should be trimmed, got %q", cfg.Todoist.RESTURL)
	}
	if cfg.Todoist.RequestsPerMinute != 50 {
		t.Errorf("expected 50 rpm, got %d", cfg.Todoist.RequestsPerMinute)
	}
	if cfg.Todoist.Timeout != 30*time.Second {
		t.Errorf("env override not applied: %s", cfg.Todoist.Timeout)
	}
	if cfg.Credential.LeaseCommand != "vault-lease todoist-reader" {
		t.Errorf("unexpected lease command %q", cfg.Credential.LeaseCommand)
	}
	if cfg.Timezone != "Europe/Berlin" {
		t.Errorf("unexpected timezone %q", cfg.Timezone)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TD_TODOIST_REQUESTS_PER_MINUTE", "-1")
	if _, err := load(t.TempDir()); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("todoist: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := load(dir); err == nil {
		t.Fatalf("expected parse error")
	}
}
