package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type config struct {
	ListenAddr      string `toml:"listen_addr"`
	ProgramSeed     string `toml:"program_seed"`
	DefaultCapacity int    `toml:"default_capacity"`
}

func defaultConfig() config {
	return config{
		ListenAddr:      ":8420",
		ProgramSeed:     "ledgercelld",
		DefaultCapacity: 128,
	}
}

// loadConfig reads a TOML config from path, layering it over the defaults.
// An empty path means defaults only.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return config{}, fmt.Errorf("config %s: listen_addr must not be empty", path)
	}
	if strings.TrimSpace(cfg.ProgramSeed) == "" {
		return config{}, fmt.Errorf("config %s: program_seed must not be empty", path)
	}
	if cfg.DefaultCapacity <= 0 {
		return config{}, fmt.Errorf("config %s: default_capacity must be positive, got %d", path, cfg.DefaultCapacity)
	}
	return cfg, nil
}
