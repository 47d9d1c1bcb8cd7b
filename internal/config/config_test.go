package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultPageSize != DefaultPageSize {
		t.Errorf("page size = %d, want %d", cfg.DefaultPageSize, DefaultPageSize)
	}
	if cfg.DefaultMaxResults != DefaultMaxResults {
		t.Errorf("max results = %d, want %d", cfg.DefaultMaxResults, DefaultMaxResults)
	}
	if cfg.RecentLimit != DefaultRecentLimit {
		t.Errorf("recent limit = %d, want %d", cfg.RecentLimit, DefaultRecentLimit)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Save(&Config{DefaultPageSize: 25}); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultPageSize != 25 {
		t.Errorf("page size = %d, want 25", cfg.DefaultPageSize)
	}
	// Unset fields fall back to defaults.
	if cfg.DefaultMaxResults != DefaultMaxResults {
		t.Errorf("max results = %d, want %d", cfg.DefaultMaxResults, DefaultMaxResults)
	}
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".avro-viewer")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/data/file.avro")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(home, "data", "file.avro")
	if got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	got, err = ExpandPath("/abs/path")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/abs/path" {
		t.Errorf("ExpandPath = %q, want /abs/path", got)
	}
}
