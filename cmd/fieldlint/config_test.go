package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lint.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadRunConfigDefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
quiet = true
fail_fast = true
max_rejections = 3
slow_warn = "1s"
`)

	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Quiet || !cfg.FailFast {
		t.Fatalf("unexpected flags: quiet=%v fail_fast=%v", cfg.Quiet, cfg.FailFast)
	}
	if cfg.MaxRejections != 3 {
		t.Fatalf("unexpected max rejections: %d", cfg.MaxRejections)
	}
	if cfg.SlowWarn != time.Second {
		t.Fatalf("unexpected slow warn: %v", cfg.SlowWarn)
	}
}

func TestLoadRunConfigKeepsDefaultsWhenUnset(t *testing.T) {
	path := writeConfig(t, `
quiet = true
`)

	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Quiet {
		t.Fatal("expected quiet override")
	}
	if cfg.FailFast || cfg.MaxRejections != 0 {
		t.Fatalf("defaults lost: fail_fast=%v max_rejections=%d", cfg.FailFast, cfg.MaxRejections)
	}
	if cfg.SlowWarn != 250*time.Millisecond {
		t.Fatalf("unexpected slow warn default: %v", cfg.SlowWarn)
	}
}

func TestLoadRunConfigSlowWarnMillis(t *testing.T) {
	path := writeConfig(t, `
slow_warn_ms = 1200
`)

	cfg, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SlowWarn != 1200*time.Millisecond {
		t.Fatalf("unexpected slow warn: %v", cfg.SlowWarn)
	}
}

func TestLoadRunConfigBadDuration(t *testing.T) {
	path := writeConfig(t, `
slow_warn = "abc"
`)

	if _, err := loadRunConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadRunConfigNegativeRejections(t *testing.T) {
	path := writeConfig(t, `
max_rejections = -1
`)

	if _, err := loadRunConfig(path); err == nil {
		t.Fatalf("expected validation error")
	}
}
