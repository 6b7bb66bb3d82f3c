package stack

import (
	"testing"

	"github.com/stackmatrix/stacker/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Rows:           32,
		Cols:           8,
		BlockWidth:     4,
		InitialDelayMs: 200,
		DelayStepMs:    25,
		MinDelayMs:     100,
		TickRate:       60,
		Seed:           12345,
	}
}

func buttonFrame() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionButton)
	return in
}

// assertFreshGame checks the full-reset postconditions.
func assertFreshGame(t *testing.T, g *Game) {
	t.Helper()

	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
	if got := g.Grid().OccupiedCount(); got != 0 {
		t.Errorf("occupied cells = %d, want 0", got)
	}
	if got := g.Grid().StackHeight(); got != 0 {
		t.Errorf("stackHeight = %d, want 0", got)
	}
	if g.MoveDelayMs() != g.Config().InitialDelayMs {
		t.Errorf("moveDelay = %d, want initial %d", g.MoveDelayMs(), g.Config().InitialDelayMs)
	}
	b := g.Block()
	if !b.Active {
		t.Error("block should be active after reset")
	}
	if b.Row != 0 {
		t.Errorf("block row = %d, want 0", b.Row)
	}
	limit := g.Config().Cols - g.Config().BlockWidth
	if b.Pos < 0 || b.Pos > limit {
		t.Errorf("block pos = %d, want within [0, %d]", b.Pos, limit)
	}
	if b.Dir != DirRight {
		t.Errorf("block dir = %v, want right", b.Dir)
	}
}

func TestResetPostconditions(t *testing.T) {
	g := New(testConfig())
	assertFreshGame(t, g)
}

func TestDropAtRowZero(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 2

	res := g.Step(10, buttonFrame())

	for c := 2; c < 6; c++ {
		if !g.Grid().IsOccupied(0, c) {
			t.Errorf("cell (0,%d) should be occupied", c)
		}
	}
	if got := g.Grid().StackHeight(); got != 1 {
		t.Errorf("stackHeight = %d, want 1", got)
	}
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
	b := g.Block()
	if b.Row != 1 || !b.Active {
		t.Errorf("block = %+v, want active at row 1", b)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventLanded {
		t.Errorf("events = %v, want single landed", res.Events)
	}
}

func TestMissEndsGameGridUnchanged(t *testing.T) {
	g := New(testConfig())

	// Floor drop occupying columns 4..7.
	g.block.Pos = 4
	g.Step(10, buttonFrame())

	// Second block over columns 0..3: zero overlap with the stack.
	g.block.Pos = 0
	before := g.Grid().OccupiedCount()
	res := g.Step(20, buttonFrame())

	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game over", g.Mode())
	}
	if s := g.State(); s.Reason != OverMissed {
		t.Errorf("reason = %v, want missed", s.Reason)
	}
	if got := g.Grid().OccupiedCount(); got != before {
		t.Errorf("occupied cells changed on miss: %d -> %d", before, got)
	}
	if g.Block().Active {
		t.Error("block should be inactive after a miss")
	}
	if len(res.Events) != 1 || res.Events[0].Kind != EventMissed {
		t.Errorf("events = %v, want single missed", res.Events)
	}
}

func TestSingleColumnOverlapSurvives(t *testing.T) {
	g := New(testConfig())

	// Floor drop occupying columns 4..7.
	g.block.Pos = 4
	g.Step(10, buttonFrame())

	// Second block over columns 1..4: only column 4 rests on the stack.
	g.block.Pos = 1
	g.Step(20, buttonFrame())

	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, want playing (one overhanging column is enough)", g.Mode())
	}
	if !g.Grid().IsOccupied(1, 4) {
		t.Error("cell (1,4) should be occupied")
	}
	for _, c := range []int{1, 2, 3} {
		if g.Grid().IsOccupied(1, c) {
			t.Errorf("cell (1,%d) should not be occupied", c)
		}
	}
	if got := g.Grid().StackHeight(); got != 2 {
		t.Errorf("stackHeight = %d, want 2", got)
	}
	if b := g.Block(); b.Row != 2 || !b.Active {
		t.Errorf("block = %+v, want active at row 2", b)
	}
}

func TestReferenceExample(t *testing.T) {
	// rows=32, cols=8, width=4. Drop at columns [2,6) on row 0, then at
	// [0,4) on row 1: overlap only at columns 2 and 3.
	g := New(testConfig())

	g.block.Pos = 2
	g.Step(10, buttonFrame())
	for c := 2; c < 6; c++ {
		if !g.Grid().IsOccupied(0, c) {
			t.Fatalf("cell (0,%d) should be occupied", c)
		}
	}
	if got := g.Grid().StackHeight(); got != 1 {
		t.Fatalf("stackHeight = %d, want 1", got)
	}

	g.block.Pos = 0
	g.Step(20, buttonFrame())
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %v, want playing", g.Mode())
	}
	for _, c := range []int{2, 3} {
		if !g.Grid().IsOccupied(1, c) {
			t.Errorf("cell (1,%d) should be occupied", c)
		}
	}
	for _, c := range []int{0, 1} {
		if g.Grid().IsOccupied(1, c) {
			t.Errorf("cell (1,%d) should not be occupied", c)
		}
	}
	if got := g.Grid().StackHeight(); got != 2 {
		t.Errorf("stackHeight = %d, want 2", got)
	}
}

func TestDifficultyRampMonotoneWithFloor(t *testing.T) {
	g := New(testConfig())

	prev := g.MoveDelayMs()
	now := int64(0)
	for i := 0; i < 10; i++ {
		// Keep the block aligned with the stack so every drop lands.
		g.block.Pos = 2
		now += 50
		g.Step(now, buttonFrame())

		cur := g.MoveDelayMs()
		if cur > prev {
			t.Fatalf("moveDelay increased: %d -> %d", prev, cur)
		}
		if cur < g.Config().MinDelayMs {
			t.Fatalf("moveDelay %d below floor %d", cur, g.Config().MinDelayMs)
		}
		prev = cur
	}
	if prev != g.Config().MinDelayMs {
		t.Errorf("moveDelay = %d after 10 drops, want floor %d", prev, g.Config().MinDelayMs)
	}
}

func TestToppedOut(t *testing.T) {
	cfg := testConfig()
	cfg.Rows = 4
	g := New(cfg)

	now := int64(0)
	for i := 0; i < 4; i++ {
		g.block.Pos = 2
		now += 50
		res := g.Step(now, buttonFrame())
		if i < 3 {
			if g.Mode() != ModePlaying {
				t.Fatalf("drop %d: mode = %v, want playing", i, g.Mode())
			}
			continue
		}
		if g.Mode() != ModeGameOver {
			t.Fatalf("mode = %v, want game over after filling all rows", g.Mode())
		}
		if s := g.State(); s.Reason != OverToppedOut {
			t.Errorf("reason = %v, want topped out", s.Reason)
		}
		if len(res.Events) != 1 || res.Events[0].Kind != EventToppedOut {
			t.Errorf("events = %v, want single topped_out", res.Events)
		}
	}
}

func TestHorizontalMotionBounds(t *testing.T) {
	g := New(testConfig())
	limit := g.Config().Cols - g.Config().BlockWidth

	for i := 0; i < 200; i++ {
		g.advanceBlock()
		b := g.Block()
		if b.Pos < 0 || b.Pos > limit {
			t.Fatalf("step %d: pos %d out of [0, %d]", i, b.Pos, limit)
		}
		// Direction flips exactly at each boundary touch.
		if b.Pos == 0 && b.Dir != DirRight {
			t.Fatalf("step %d: at left boundary, dir = %v", i, b.Dir)
		}
		if b.Pos == limit && b.Dir != DirLeft {
			t.Fatalf("step %d: at right boundary, dir = %v", i, b.Dir)
		}
	}
}

func TestMotionTiming(t *testing.T) {
	g := New(testConfig())
	// Pin the block away from the right boundary so the first advance is
	// a plain one-column move rather than a clamp.
	g.block.Pos = 0
	g.block.Dir = DirRight
	start := 0
	empty := core.NewInputFrame()

	// Below the move delay nothing happens.
	g.Step(g.Config().InitialDelayMs-1, empty)
	if g.Block().Pos != start {
		t.Fatal("block moved before the move delay elapsed")
	}

	// At the delay the block advances one column.
	g.Step(g.Config().InitialDelayMs, empty)
	if g.Block().Pos == start {
		t.Fatal("block did not move once the delay elapsed")
	}
}

func TestGameOverIsTerminalUntilReset(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 4
	g.Step(10, buttonFrame())
	g.block.Pos = 0
	g.Step(20, buttonFrame())
	if g.Mode() != ModeGameOver {
		t.Fatal("setup failed: expected game over")
	}

	// Ticks without input leave the terminal state untouched.
	empty := core.NewInputFrame()
	snap := g.Snapshot()
	for now := int64(30); now < 2000; now += 100 {
		g.Step(now, empty)
	}
	if g.Snapshot() != snap {
		t.Error("game over state changed without input")
	}

	// A distinct press performs the full reset.
	g.Step(2100, buttonFrame())
	assertFreshGame(t, g)
}

func TestDiagnosticMode(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 2
	g.Step(10, buttonFrame())
	before := g.Snapshot()

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionDiagToggle)
	g.Step(20, toggle)

	if g.Mode() != ModeDiagnostic {
		t.Fatalf("mode = %v, want diagnostic", g.Mode())
	}
	if g.TestRow() != 0 {
		t.Errorf("testRow = %d, want 0", g.TestRow())
	}
	after := g.Snapshot()
	if after.Occupied != before.Occupied || after.StackHeight != before.StackHeight {
		t.Error("entering diagnostic mode mutated the grid")
	}
	if after.BlockPos != before.BlockPos || after.BlockRow != before.BlockRow {
		t.Error("entering diagnostic mode mutated the block")
	}

	// Both the advance channel and the button move the cursor.
	adv := core.NewInputFrame()
	adv.Set(core.ActionDiagAdvance)
	g.Step(30, adv)
	if g.TestRow() != 1 {
		t.Errorf("testRow = %d after advance, want 1", g.TestRow())
	}
	g.Step(40, buttonFrame())
	if g.TestRow() != 2 {
		t.Errorf("testRow = %d after button, want 2", g.TestRow())
	}

	// Cursor wraps rows-1 -> 0.
	for i := g.TestRow(); i < g.Config().Rows-1; i++ {
		g.Step(50+int64(i), buttonFrame())
	}
	if g.TestRow() != g.Config().Rows-1 {
		t.Fatalf("testRow = %d, want %d", g.TestRow(), g.Config().Rows-1)
	}
	g.Step(500, buttonFrame())
	if g.TestRow() != 0 {
		t.Errorf("testRow = %d after wrap, want 0", g.TestRow())
	}

	// Exit performs the same full reset as game over -> reset.
	g.Step(600, toggle)
	assertFreshGame(t, g)
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input schedule produce identical
	// snapshots.
	run := func() Snapshot {
		g := New(testConfig())
		empty := core.NewInputFrame()
		for now := int64(0); now < 20000; now += 16 {
			in := empty
			if now%3008 == 0 && now > 0 {
				in = buttonFrame()
			}
			g.Step(now, in)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("snapshots differ:\n%+v\n%+v", a, b)
	}
}
