package config

import (
	_ "embed"
)

//go:embed defaults/stacker.yaml
var defaultStackerYAML []byte

// Default returns the built-in configuration matching the reference
// 32x8 panel with a 4-wide block.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: 32,
			Cols: 8,
		},
		Block: BlockConfig{
			Width: 4,
		},
		Speed: SpeedConfig{
			InitialDelayMs: 280,
			StepMs:         20,
			MinDelayMs:     60,
		},
		Input: InputConfig{
			DebounceMs: 30,
			HoldMs:     80,
		},
		Display: DisplayConfig{
			Rotate:  true,
			FlashMs: 400,
			On:      "██",
			Off:     "· ",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultStackerYAML
}
