package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// modPresetConfig names reusable mod combinations a caller can select with
// --preset instead of spelling out --mods every time.
type modPresetConfig struct {
	Presets map[string]string `toml:"presets"`
}

func defaultModPresetConfig() modPresetConfig {
	return modPresetConfig{
		Presets: map[string]string{
			"nomod": "",
			"hdhr":  "HD,HR",
			"hddt":  "HD,DT",
			"dtfl":  "DT,FL",
			"rx":    "RX",
		},
	}
}

// loadModPresetConfig reads path as TOML, falling back to defaults when path
// is empty or the file doesn't exist.
func loadModPresetConfig(path string) (modPresetConfig, error) {
	cfg := defaultModPresetConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read mod preset config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse mod preset config: %w", err)
	}

	return cfg, nil
}

func (c modPresetConfig) resolve(preset string) (string, bool) {
	spec, ok := c.Presets[preset]
	return spec, ok
}
