package stack

import (
	"math/rand"

	"github.com/stackmatrix/stacker/internal/core"
)

// Mode is the top-level game mode.
type Mode int

const (
	ModePlaying Mode = iota
	ModeGameOver
	ModeDiagnostic
)

// String returns the string representation of a mode.
func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeDiagnostic:
		return "diagnostic"
	default:
		return "unknown"
	}
}

// OverReason says why a game ended. Game over is a domain result, not an
// error: it is surfaced as ordinary state and left for the player to
// clear with a reset.
type OverReason int

const (
	OverNone OverReason = iota
	OverMissed
	OverToppedOut
)

// String returns the string representation of a game-over reason.
func (r OverReason) String() string {
	switch r {
	case OverMissed:
		return "missed"
	case OverToppedOut:
		return "topped_out"
	default:
		return "none"
	}
}

// EventKind identifies a state transition reported by Step.
type EventKind string

const (
	EventLanded      EventKind = "landed"
	EventMissed      EventKind = "missed"
	EventToppedOut   EventKind = "topped_out"
	EventReset       EventKind = "reset"
	EventDiagEnter   EventKind = "diag_enter"
	EventDiagExit    EventKind = "diag_exit"
	EventDiagAdvance EventKind = "diag_advance"
)

// Event is a discrete transition emitted by a simulation step. Row
// carries the row the transition concerned, where that makes sense.
type Event struct {
	Kind EventKind
	Row  int
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Mode        Mode
	Reason      OverReason
	StackHeight int
	MoveDelayMs int64
	TestRow     int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Game owns the complete game state: grid, in-flight block, mode and
// the difficulty scalar. No other component mutates it; the render
// cycle is a pure reader. All event handling is total: inputs that make
// no sense in the current mode are ignored.
type Game struct {
	cfg core.RuntimeConfig
	rng *rand.Rand

	grid  *Grid
	block Block
	mode  Mode

	reason      OverReason
	moveDelayMs int64
	lastMoveMs  int64
	testRow     int
}

// New creates a game and performs the initial reset.
func New(cfg core.RuntimeConfig) *Game {
	g := &Game{}
	g.Reset(cfg)
	return g
}

// Reset reinitializes the game with a fresh configuration and RNG.
// Called once at start and again when the platform restarts a session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	if g.grid == nil || g.grid.Rows() != cfg.Rows || g.grid.Cols() != cfg.Cols {
		g.grid = NewGrid(cfg.Rows, cfg.Cols)
	}
	g.restart(0)
}

// restart is the full game reset shared by explicit restarts after game
// over and by diagnostic-mode exit: grid cleared, speed restored,
// direction reset, fresh block at row 0.
func (g *Game) restart(nowMs int64) {
	g.grid.Reset()
	g.moveDelayMs = g.cfg.InitialDelayMs
	g.lastMoveMs = nowMs
	g.mode = ModePlaying
	g.reason = OverNone
	g.testRow = 0
	g.block = Block{
		Pos:    g.randomPos(),
		Row:    0,
		Dir:    DirRight,
		Active: true,
	}
}

// randomPos picks a spawn column satisfying 0 <= pos <= cols-width.
func (g *Game) randomPos() int {
	return g.rng.Intn(g.cfg.Cols - g.cfg.BlockWidth + 1)
}

// Step advances the simulation by one tick. nowMs is monotonically
// increasing elapsed milliseconds since start; in carries the debounced
// discrete events for this tick.
func (g *Game) Step(nowMs int64, in core.InputFrame) StepResult {
	var evs []Event

	if in.Has(core.ActionDiagToggle) {
		if g.mode == ModeDiagnostic {
			g.restart(nowMs)
			evs = append(evs, Event{Kind: EventDiagExit}, Event{Kind: EventReset})
		} else {
			// Entering touches neither grid nor block.
			g.mode = ModeDiagnostic
			g.testRow = 0
			evs = append(evs, Event{Kind: EventDiagEnter})
		}
		return g.result(evs)
	}

	switch g.mode {
	case ModeDiagnostic:
		if in.Has(core.ActionDiagAdvance) || in.Has(core.ActionButton) {
			g.testRow = (g.testRow + 1) % g.cfg.Rows
			evs = append(evs, Event{Kind: EventDiagAdvance, Row: g.testRow})
		}

	case ModeGameOver:
		// Terminal until a distinct confirmed press; motion and drop
		// triggers are ignored here.
		if in.Has(core.ActionButton) {
			g.restart(nowMs)
			evs = append(evs, Event{Kind: EventReset})
		}

	case ModePlaying:
		if in.Has(core.ActionButton) && g.block.Active {
			evs = append(evs, g.resolveDrop(nowMs)...)
		} else if g.block.Active && nowMs-g.lastMoveMs >= g.moveDelayMs {
			g.advanceBlock()
			g.lastMoveMs = nowMs
		}
	}

	return g.result(evs)
}

// advanceBlock moves the block one column along its sweep, clamping to
// the boundary and flipping direction on a boundary touch.
func (g *Game) advanceBlock() {
	if g.block.Dir == DirRight {
		g.block.Pos++
	} else {
		g.block.Pos--
	}

	limit := g.cfg.Cols - g.cfg.BlockWidth
	if g.block.Pos <= 0 {
		g.block.Pos = 0
		g.block.Dir = DirRight
	} else if g.block.Pos >= limit {
		g.block.Pos = limit
		g.block.Dir = DirLeft
	}
}

// resolveDrop judges the block at its current position. Row 0 always
// accepts a landing. Above row 0 a column is placed only when it rests
// directly on an occupied cell; any single placed column keeps the game
// alive (one overhanging column is enough to survive), while zero
// placements is a miss and ends the game with the grid untouched.
func (g *Game) resolveDrop(nowMs int64) []Event {
	b := g.block
	placed := false
	for c := b.Pos; c < b.Pos+g.cfg.BlockWidth; c++ {
		if b.Row == 0 || g.grid.IsOccupied(b.Row-1, c) {
			g.grid.Place(b.Row, c)
			placed = true
		}
	}

	if !placed && b.Row > 0 {
		g.mode = ModeGameOver
		g.reason = OverMissed
		g.block.Active = false
		return []Event{{Kind: EventMissed, Row: b.Row}}
	}

	if g.grid.StackHeight() >= g.cfg.Rows {
		g.mode = ModeGameOver
		g.reason = OverToppedOut
		g.block.Active = false
		return []Event{{Kind: EventToppedOut, Row: b.Row}}
	}

	// Landed: next row, fresh spawn, speed up toward the floor.
	g.block.Row++
	g.block.Pos = g.randomPos()
	g.block.Active = true
	if g.moveDelayMs > g.cfg.MinDelayMs {
		g.moveDelayMs -= g.cfg.DelayStepMs
		if g.moveDelayMs < g.cfg.MinDelayMs {
			g.moveDelayMs = g.cfg.MinDelayMs
		}
	}
	g.lastMoveMs = nowMs
	return []Event{{Kind: EventLanded, Row: b.Row}}
}

func (g *Game) result(evs []Event) StepResult {
	return StepResult{State: g.State(), Events: evs}
}

// State returns the current game state.
func (g *Game) State() GameState {
	return GameState{
		Mode:        g.mode,
		Reason:      g.reason,
		StackHeight: g.grid.StackHeight(),
		MoveDelayMs: g.moveDelayMs,
		TestRow:     g.testRow,
	}
}

// Mode returns the current game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Grid exposes the occupancy model to readers (render cycle, tests).
func (g *Game) Grid() *Grid {
	return g.grid
}

// Block returns a copy of the in-flight block.
func (g *Game) Block() Block {
	return g.block
}

// TestRow returns the diagnostic cursor row.
func (g *Game) TestRow() int {
	return g.testRow
}

// MoveDelayMs returns the current interval between block moves.
func (g *Game) MoveDelayMs() int64 {
	return g.moveDelayMs
}

// Config returns the runtime configuration the game was reset with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}
