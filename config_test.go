package steamgriddb

import (
	"testing"
	"time"
)

func TestConfigFromEnv_ReadsVariables(t *testing.T) {
	t.Setenv("STEAMGRIDDB_API_KEY", "env-key")
	t.Setenv("STEAMGRIDDB_BASE_URL", "http://catalog.example/api/v2")
	t.Setenv("STEAMGRIDDB_USER_AGENT", "asset-sync/1.2")
	t.Setenv("STEAMGRIDDB_TIMEOUT", "750ms")
	t.Setenv("STEAMGRIDDB_DEBUG", "true")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Fatalf("api key = %q", cfg.APIKey)
	}
	if cfg.BaseURL != "http://catalog.example/api/v2" {
		t.Fatalf("base url = %q", cfg.BaseURL)
	}
	if cfg.UserAgent != "asset-sync/1.2" {
		t.Fatalf("user agent = %q", cfg.UserAgent)
	}
	if cfg.Timeout != 750*time.Millisecond {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if !cfg.Debug {
		t.Fatal("debug flag not read")
	}
}

func TestConfigFromEnv_HeadersMap(t *testing.T) {
	t.Setenv("STEAMGRIDDB_HEADERS", "X-Origin:asset-sync,X-Trace:on")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if cfg.Headers["X-Origin"] != "asset-sync" || cfg.Headers["X-Trace"] != "on" {
		t.Fatalf("headers = %v", cfg.Headers)
	}
}

func TestConfigFromEnv_BadTimeout(t *testing.T) {
	t.Setenv("STEAMGRIDDB_TIMEOUT", "soon")
	if _, err := ConfigFromEnv(); err == nil {
		t.Fatal("expected parse error for bad duration")
	}
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("STEAMGRIDDB_API_KEY", "env-key")
	t.Setenv("STEAMGRIDDB_BASE_URL", "http://catalog.example")

	c, err := NewFromEnv()
	if err != nil {
		t.Fatalf("NewFromEnv: %v", err)
	}
	if c.cfg.APIKey != "env-key" || c.cfg.BaseURL != "http://catalog.example" {
		t.Fatalf("config not taken from environment: %+v", c.cfg)
	}
}

func TestNewFromEnv_BadConfig(t *testing.T) {
	t.Setenv("STEAMGRIDDB_TIMEOUT", "not-a-duration")
	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error from bad environment")
	}
}
