// Package core provides fundamental types for the stacker game: runtime
// configuration, logical/physical coordinates, input actions and the
// render surface contract. It contains no external dependencies
// (especially no Bubble Tea) to keep game logic pure and testable.
package core

// RuntimeConfig contains configuration passed to the game at initialization.
// All speed values are in milliseconds of elapsed game time.
type RuntimeConfig struct {
	Rows       int // Logical grid height
	Cols       int // Logical grid width
	BlockWidth int // Width of the moving block, in columns

	InitialDelayMs int64 // Starting interval between block moves
	DelayStepMs    int64 // Interval reduction per successful drop
	MinDelayMs     int64 // Floor for the move interval

	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic block spawns
	Rotate   bool  // Swap logical axes when mapping to the panel
}

// DefaultConfig returns a RuntimeConfig matching the reference panel:
// a 32x8 matrix with a 4-wide block, logical axes swapped.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:           32,
		Cols:           8,
		BlockWidth:     4,
		InitialDelayMs: 280,
		DelayStepMs:    20,
		MinDelayMs:     60,
		TickRate:       60,
		Seed:           0, // 0 means use current time in platform layer
		Rotate:         true,
	}
}
