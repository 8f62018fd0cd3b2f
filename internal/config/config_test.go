package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_ValidConfig(t *testing.T) {
	path := writeConfig(t, `
feed:
  client_id: abc123
  language: fr
  timeout: 5s
  default_who_we_are: "We build trading tools."
retry:
  max_retries: 3
  base_delay: 500ms
rate_limit:
  min_interval: 2s
  burst: 2
server:
  addr: ":9000"
  metrics_addr: ""
probe:
  interval: 5m
log:
  level: DEBUG
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.ClientID != "abc123" || cfg.Feed.Language != "fr" {
		t.Errorf("Feed = %+v", cfg.Feed)
	}
	if cfg.Feed.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.Feed.BaseURL)
	}
	if cfg.Feed.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Feed.Timeout)
	}
	if cfg.Feed.DefaultWhoWeAre != "We build trading tools." {
		t.Errorf("DefaultWhoWeAre = %q", cfg.Feed.DefaultWhoWeAre)
	}
	if cfg.Retry.MaxRetries != 3 || cfg.Retry.BaseDelay != 500*time.Millisecond {
		t.Errorf("Retry = %+v", cfg.Retry)
	}
	if cfg.RateLimit.MinInterval != 2*time.Second || cfg.RateLimit.Burst != 2 {
		t.Errorf("RateLimit = %+v", cfg.RateLimit)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.MetricsAddr != "" {
		t.Errorf("MetricsAddr = %q, want empty (disabled)", cfg.Server.MetricsAddr)
	}
	if cfg.Probe.Interval != 5*time.Minute {
		t.Errorf("Probe.Interval = %v, want 5m", cfg.Probe.Interval)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "feed: [broken")
	if _, err := Load(path); err == nil {
		t.Fatal("Load: expected error for invalid YAML")
	}
}

func TestLoad_EmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.Feed != def.Feed || cfg.Server != def.Server || cfg.Retry != def.Retry {
		t.Errorf("cfg = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("CAREERFEED_TEST_CLIENT", "fromenv42")
	cfg, err := Load(writeConfig(t, "feed:\n  client_id: ${CAREERFEED_TEST_CLIENT}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.ClientID != "fromenv42" {
		t.Errorf("ClientID = %q, want fromenv42", cfg.Feed.ClientID)
	}
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, "feed:\n  timeout: soon\n"))
	if err == nil {
		t.Fatal("Load: expected error for bad duration")
	}
	if !strings.Contains(err.Error(), "feed.timeout") {
		t.Errorf("error = %v, want mention of feed.timeout", err)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	if _, err := Load(writeConfig(t, "feed:\n  base_url: not a url\n")); err == nil {
		t.Fatal("Load: expected error for invalid base_url")
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	if _, err := Load(writeConfig(t, "log:\n  level: loud\n")); err == nil {
		t.Fatal("Load: expected error for unknown log level")
	}
}

func TestLoad_ZeroRetriesAllowed(t *testing.T) {
	cfg, err := Load(writeConfig(t, "retry:\n  max_retries: 0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Retry.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", cfg.Retry.MaxRetries)
	}
}

func TestLoad_ProbeIntervalTooShort(t *testing.T) {
	if _, err := Load(writeConfig(t, "probe:\n  interval: 5s\n")); err == nil {
		t.Fatal("Load: expected error for probe interval under 30s")
	}
}

func TestLoad_RetryMaxDelay(t *testing.T) {
	cfg, err := Load(writeConfig(t, "retry:\n  max_delay: 1m\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Retry.MaxDelay != time.Minute {
		t.Errorf("MaxDelay = %v, want 1m", cfg.Retry.MaxDelay)
	}
	if Default().Retry.MaxDelay != 30*time.Second {
		t.Errorf("default MaxDelay = %v, want 30s", Default().Retry.MaxDelay)
	}
}

func TestLoad_RetryMaxDelayBelowBaseDelay(t *testing.T) {
	if _, err := Load(writeConfig(t, "retry:\n  base_delay: 5s\n  max_delay: 1s\n")); err == nil {
		t.Fatal("Load: expected error for max_delay under base_delay")
	}
}

func TestLoad_DefaultWhoWeAre(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.HasPrefix(cfg.Feed.DefaultWhoWeAre, "TradeStation is the home of those born to trade.") {
		t.Errorf("DefaultWhoWeAre = %q, want the built-in paragraph", cfg.Feed.DefaultWhoWeAre)
	}

	cfg, err = Load(writeConfig(t, "feed:\n  default_who_we_are: \"\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Feed.DefaultWhoWeAre != "" {
		t.Errorf("DefaultWhoWeAre = %q, want empty when set to \"\"", cfg.Feed.DefaultWhoWeAre)
	}
}
