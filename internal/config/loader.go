package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DifficultyPreset represents a named speed curve.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Load loads the stacker configuration.
// Search order: customPath -> ~/.stacker/config.yaml -> ./configs/stacker.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "stacker.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultStackerYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads, parses and validates a config file, reporting whether
// it was usable.
func tryLoad(path string) (Config, bool) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to a user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".stacker", filename)
}

// ApplyPreset adjusts the speed curve for a difficulty preset. The
// fixed preset disables the ramp entirely; the named presets trade
// starting delay against how aggressively it shrinks.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.InitialDelayMs = 360
		cfg.Speed.StepMs = 15
		cfg.Speed.MinDelayMs = 90
	case DifficultyNormal:
		cfg.Speed.InitialDelayMs = 280
		cfg.Speed.StepMs = 20
		cfg.Speed.MinDelayMs = 60
	case DifficultyHard:
		cfg.Speed.InitialDelayMs = 220
		cfg.Speed.StepMs = 30
		cfg.Speed.MinDelayMs = 45
	case DifficultyFixed:
		cfg.Speed.StepMs = 0
	}
}
