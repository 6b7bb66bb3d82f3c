// Package config provides YAML-based configuration loading and
// difficulty presets for the stacker simulator.
package config

import (
	"fmt"

	"github.com/stackmatrix/stacker/internal/core"
)

// Config contains all tunables for the game and its surrounding platform.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Block   BlockConfig   `yaml:"block"`
	Speed   SpeedConfig   `yaml:"speed"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
}

// GridConfig defines the logical grid dimensions.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// BlockConfig defines the moving block parameters.
type BlockConfig struct {
	Width int `yaml:"width"`
}

// SpeedConfig defines the difficulty ramp. The move delay starts at
// InitialDelayMs, drops by StepMs per successful drop and floors at
// MinDelayMs.
type SpeedConfig struct {
	InitialDelayMs int64 `yaml:"initial_delay_ms"`
	StepMs         int64 `yaml:"step_ms"`
	MinDelayMs     int64 `yaml:"min_delay_ms"`
}

// InputConfig defines button debounce behavior.
type InputConfig struct {
	DebounceMs int64 `yaml:"debounce_ms"` // Confirm window for a candidate press
	HoldMs     int64 `yaml:"hold_ms"`     // Simulated level hold per keypress in the TUI
}

// DisplayConfig defines how frames reach the panel and the simulator.
type DisplayConfig struct {
	Rotate  bool   `yaml:"rotate"`   // Swap logical axes for the physical panel
	FlashMs int64  `yaml:"flash_ms"` // Game-over flash cadence
	On      string `yaml:"on"`       // Simulator cell when lit
	Off     string `yaml:"off"`      // Simulator cell when dark
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("config: grid %dx%d must be positive", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Block.Width < 1 || c.Block.Width > c.Grid.Cols {
		return fmt.Errorf("config: block width %d must be within [1, %d]", c.Block.Width, c.Grid.Cols)
	}
	if c.Speed.InitialDelayMs <= 0 {
		return fmt.Errorf("config: initial delay %dms must be positive", c.Speed.InitialDelayMs)
	}
	if c.Speed.MinDelayMs <= 0 || c.Speed.MinDelayMs > c.Speed.InitialDelayMs {
		return fmt.Errorf("config: min delay %dms must be within (0, %d]",
			c.Speed.MinDelayMs, c.Speed.InitialDelayMs)
	}
	if c.Speed.StepMs < 0 {
		return fmt.Errorf("config: speed step %dms must not be negative", c.Speed.StepMs)
	}
	if c.Input.DebounceMs < 0 {
		return fmt.Errorf("config: debounce %dms must not be negative", c.Input.DebounceMs)
	}
	return nil
}

// Runtime converts the configuration into the game's RuntimeConfig.
func (c Config) Runtime(tickRate int, seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Rows:           c.Grid.Rows,
		Cols:           c.Grid.Cols,
		BlockWidth:     c.Block.Width,
		InitialDelayMs: c.Speed.InitialDelayMs,
		DelayStepMs:    c.Speed.StepMs,
		MinDelayMs:     c.Speed.MinDelayMs,
		TickRate:       tickRate,
		Seed:           seed,
		Rotate:         c.Display.Rotate,
	}
}
