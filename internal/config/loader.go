package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the client configuration.
// Search order: customPath -> ~/.firetower/config.yaml ->
// ./configs/firetower.yaml -> embedded default.
func Load(customPath string) (Config, error) {
	var cfg Config

	// A custom path must exist and parse; failures are surfaced.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/firetower.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return withDefaults(cfg), nil
}

// withDefaults fills gaps a partial config file leaves open.
func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.Theme.TreeGlyph == "" {
		cfg.Theme.TreeGlyph = def.Theme.TreeGlyph
	}
	if cfg.Theme.FireGlyph == "" {
		cfg.Theme.FireGlyph = def.Theme.FireGlyph
	}
	if cfg.Theme.FirebreakGlyph == "" {
		cfg.Theme.FirebreakGlyph = def.Theme.FirebreakGlyph
	}
	if cfg.Theme.TreeColor == "" {
		cfg.Theme.TreeColor = def.Theme.TreeColor
	}
	if cfg.Theme.FireColor == "" {
		cfg.Theme.FireColor = def.Theme.FireColor
	}
	if cfg.Theme.FirebreakColor == "" {
		cfg.Theme.FirebreakColor = def.Theme.FirebreakColor
	}
	if cfg.Theme.TowerColor == "" {
		cfg.Theme.TowerColor = def.Theme.TowerColor
	}
	if cfg.Theme.HomeColor == "" {
		cfg.Theme.HomeColor = def.Theme.HomeColor
	}
	if cfg.Seating.Count == 0 {
		cfg.Seating.Count = def.Seating.Count
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".firetower", filename)
}
