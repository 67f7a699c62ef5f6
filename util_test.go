package main

import (
	"testing"
	"time"
)

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !dirExists(dir) {
		t.Errorf("Expected dirExists to return true for existing dir")
	}
	if dirExists(dir + "-notfound") {
		t.Errorf("Expected dirExists to return false for non-existent dir")
	}
}

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		dur      time.Duration
		expected string
	}{
		{time.Second * 5, "5 seconds"},
		{time.Second * 65, "1 minute, 5 seconds"},
		{time.Second * 3665, "1 hour, 1 minute, 5 seconds"},
		{time.Second * 3600, "1 hour, 0 minutes, 0 seconds"},
		{time.Second * 1, "1 second"},
	}
	for _, c := range cases {
		if got := formatUptime(c.dur); got != c.expected {
			t.Errorf("formatUptime(%v) = %q, want %q", c.dur, got, c.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Errorf("plural(1) = %q, want \"\"", plural(1))
	}
	if plural(2) != "s" {
		t.Errorf("plural(2) = %q, want \"s\"", plural(2))
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "2s")
	if got := getEnvDuration("TEST_DURATION", time.Second); got != 2*time.Second {
		t.Errorf("getEnvDuration = %v, want 2s", got)
	}
	t.Setenv("TEST_DURATION", "notaduration")
	if got := getEnvDuration("TEST_DURATION", 3*time.Second); got != 3*time.Second {
		t.Errorf("getEnvDuration fallback = %v, want 3s", got)
	}
	t.Setenv("TEST_DURATION", "")
	if got := getEnvDuration("TEST_DURATION", 4*time.Second); got != 4*time.Second {
		t.Errorf("getEnvDuration fallback unset = %v, want 4s", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %v, want 42", got)
	}
	t.Setenv("TEST_INT", "notanint")
	if got := getEnvInt("TEST_INT", 8); got != 8 {
		t.Errorf("getEnvInt fallback = %v, want 8", got)
	}
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "latin")
	if got := getEnvString("TEST_STRING", "cyrillic"); got != "latin" {
		t.Errorf("getEnvString = %q, want latin", got)
	}
	t.Setenv("TEST_STRING", "")
	if got := getEnvString("TEST_STRING", "cyrillic"); got != "cyrillic" {
		t.Errorf("getEnvString fallback = %q, want cyrillic", got)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("HANGMAN_ALPHABET", "latin")
	t.Setenv("SESSIONS_DIR", "none")
	t.Setenv("RATE_LIMIT_RPS", "3")
	t.Setenv("SESSION_TIMEOUT", "30m")

	cfg := loadConfig()
	if cfg.Port != "9090" || !cfg.IsProduction || cfg.AlphabetName != "latin" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.SessionsDir != "none" || cfg.RateLimitRPS != 3 || cfg.SessionTimeout != 30*time.Minute {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.RateLimitBurst != 20 || cfg.CleanupInterval != 10*time.Minute {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
