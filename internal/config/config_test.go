package config

import (
	"os"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// unsetEnv clears the PO_* variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // restores the old value on cleanup
		_ = os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "PO_API_URL", "PO_API_TOKEN", "PO_LOG_LEVEL", "PO_HTTP_TIMEOUT", "PO_DEBUG")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "http://localhost:8000" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.Debug || cfg.APIToken != "" {
		t.Errorf("unexpected cfg %+v", cfg)
	}
	if cfg.Level() != zerolog.InfoLevel {
		t.Errorf("Level = %s", cfg.Level())
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PO_API_URL", "https://po.example.com")
	t.Setenv("PO_API_TOKEN", "secret")
	t.Setenv("PO_LOG_LEVEL", "WARN")
	t.Setenv("PO_HTTP_TIMEOUT", "5s")
	unsetEnv(t, "PO_DEBUG")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.APIURL != "https://po.example.com" || cfg.APIToken != "secret" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %s", cfg.HTTPTimeout)
	}
	if cfg.Level() != zerolog.WarnLevel {
		t.Errorf("Level = %s", cfg.Level())
	}
}

func TestLoad_Invalid(t *testing.T) {
	unsetEnv(t, "PO_DEBUG")
	t.Setenv("PO_HTTP_TIMEOUT", "soon")
	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
	t.Setenv("PO_HTTP_TIMEOUT", "-1s")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestLevel(t *testing.T) {
	cases := []struct {
		cfg  Config
		want zerolog.Level
	}{
		{Config{LogLevel: "debug"}, zerolog.DebugLevel},
		{Config{LogLevel: "error"}, zerolog.ErrorLevel},
		{Config{LogLevel: "bogus"}, zerolog.InfoLevel},
		{Config{LogLevel: ""}, zerolog.InfoLevel},
		{Config{LogLevel: "error", Debug: true}, zerolog.DebugLevel},
	}
	for _, tc := range cases {
		if got := tc.cfg.Level(); got != tc.want {
			t.Errorf("Level(%+v) = %s, want %s", tc.cfg, got, tc.want)
		}
	}
}
