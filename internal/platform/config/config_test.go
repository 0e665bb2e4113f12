package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"flowcat/internal/platform/config"
)

func TestDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.StatePath != filepath.Join(dir, "flowcat_data.json") {
		t.Fatalf("unexpected state path %s", cfg.StatePath)
	}
	if cfg.DBPath != filepath.Join(dir, "flowcat.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.WorkDuration() != 25*time.Minute || cfg.BreakDuration() != 5*time.Minute {
		t.Fatalf("unexpected durations %v / %v", cfg.WorkDuration(), cfg.BreakDuration())
	}
}

func TestYAMLOverrides(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	raw := "work_minutes: 50\nbreak_minutes: 10\nstate_file: custom.json\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write config.yaml: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.WorkMinutes != 50 || cfg.BreakMinutes != 10 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.StatePath != filepath.Join(dir, "custom.json") {
		t.Fatalf("unexpected state path %s", cfg.StatePath)
	}
}

func TestMalformedYAMLFails(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":\n:bad"), 0o644); err != nil {
		t.Fatalf("write config.yaml: %v", err)
	}
	if _, err := config.New(dir); err == nil {
		t.Fatalf("malformed config should fail")
	}
}
