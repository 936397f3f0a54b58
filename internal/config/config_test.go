package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_FileAndEnvLayering(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "salarycast.yaml")
	yaml := "listen_addr: \":9000\"\ndata_directory: /from/file\nstatic_directory: /from/file/static\n"
	if err := os.WriteFile(file, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SALARYCAST_CONFIG", file)
	t.Setenv("SALARYCAST_DATA_DIR", "/from/env")
	t.Setenv("SALARYCAST_LISTEN_ADDR", "")
	t.Setenv("SALARYCAST_STATIC_DIR", "")
	t.Setenv("SALARYCAST_DEBUG", "1")

	cfg := Load()

	// File overrides defaults, env overrides file.
	if cfg.ListenAddr != ":9000" {
		t.Errorf("listen addr = %q, want :9000 from file", cfg.ListenAddr)
	}
	if cfg.DataDirectory != "/from/env" {
		t.Errorf("data dir = %q, want /from/env", cfg.DataDirectory)
	}
	if cfg.StaticDirectory != "/from/file/static" {
		t.Errorf("static dir = %q, want /from/file/static", cfg.StaticDirectory)
	}
	if !cfg.Debug {
		t.Error("debug should be enabled via env")
	}
}

func TestLoad_DefaultsWhenNothingSet(t *testing.T) {
	t.Setenv("SALARYCAST_CONFIG", os.DevNull)
	t.Setenv("SALARYCAST_LISTEN_ADDR", "")
	t.Setenv("SALARYCAST_DATA_DIR", "")
	t.Setenv("SALARYCAST_STATIC_DIR", "")
	t.Setenv("SALARYCAST_DEBUG", "")

	cfg := Load()
	if cfg.ListenAddr != ":8080" {
		t.Errorf("listen addr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.Debug {
		t.Error("debug should default to false")
	}
}
