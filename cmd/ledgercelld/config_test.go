package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if cfg.ListenAddr != ":8420" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.ProgramSeed != "ledgercelld" {
		t.Fatalf("unexpected program seed: %q", cfg.ProgramSeed)
	}
	if cfg.DefaultCapacity != 128 {
		t.Fatalf("unexpected default capacity: %d", cfg.DefaultCapacity)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ListenAddr != "127.0.0.1:8420" {
		t.Fatalf("unexpected listen addr: %q", cfg.ListenAddr)
	}
	if cfg.ProgramSeed != "example-program" {
		t.Fatalf("unexpected program seed: %q", cfg.ProgramSeed)
	}
	if cfg.DefaultCapacity != 96 {
		t.Fatalf("unexpected default capacity: %d", cfg.DefaultCapacity)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty listen addr", `listen_addr = " "`},
		{"empty program seed", `program_seed = ""`},
		{"zero capacity", `default_capacity = 0`},
		{"negative capacity", `default_capacity = -4`},
		{"not toml", `{"listen_addr": ":1"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.body), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := loadConfig(path); err == nil {
				t.Fatalf("expected error for %s", tt.name)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
