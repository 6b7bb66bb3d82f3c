package stack

import (
	"testing"

	"github.com/stackmatrix/stacker/internal/core"
)

func pointSet(pts []core.Point) map[core.Point]bool {
	set := make(map[core.Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

func TestBuildFramePlaying(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 2
	g.Step(10, buttonFrame()) // stack row 0: cols 2..5
	g.block.Pos = 3

	pts := BuildFrame(g, core.NewMapper(false))
	set := pointSet(pts)

	// One point per occupied cell.
	for c := 2; c < 6; c++ {
		if !set[core.P(0, c)] {
			t.Errorf("frame missing stack cell (0,%d)", c)
		}
	}
	// One point per block column at its row.
	for c := 3; c < 7; c++ {
		if !set[core.P(1, c)] {
			t.Errorf("frame missing block cell (1,%d)", c)
		}
	}
	if len(pts) != 8 {
		t.Errorf("frame has %d points, want 8", len(pts))
	}
}

func TestBuildFrameRotated(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 2
	g.Step(10, buttonFrame())
	g.block.Pos = 3

	set := pointSet(BuildFrame(g, core.NewMapper(true)))
	for c := 2; c < 6; c++ {
		if !set[core.P(c, 0)] {
			t.Errorf("rotated frame missing stack cell at physical (%d,0)", c)
		}
	}
	for c := 3; c < 7; c++ {
		if !set[core.P(c, 1)] {
			t.Errorf("rotated frame missing block cell at physical (%d,1)", c)
		}
	}
}

func TestBuildFrameGameOverOmitsBlock(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 4
	g.Step(10, buttonFrame())
	g.block.Pos = 0
	g.Step(20, buttonFrame())
	if g.Mode() != ModeGameOver {
		t.Fatal("setup failed: expected game over")
	}

	pts := BuildFrame(g, core.NewMapper(false))
	if len(pts) != 4 {
		t.Errorf("game over frame has %d points, want the 4 stack cells only", len(pts))
	}
}

func TestBuildFrameDiagnostic(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 2
	g.Step(10, buttonFrame())

	toggle := core.NewInputFrame()
	toggle.Set(core.ActionDiagToggle)
	g.Step(20, toggle)

	adv := core.NewInputFrame()
	adv.Set(core.ActionDiagAdvance)
	g.Step(30, adv)
	g.Step(40, adv)

	pts := BuildFrame(g, core.NewMapper(false))
	if len(pts) != g.Config().Cols {
		t.Fatalf("diagnostic frame has %d points, want one per column (%d)",
			len(pts), g.Config().Cols)
	}
	// A full illuminated row at the cursor, grid ignored.
	for _, p := range pts {
		if p.X != 2 {
			t.Errorf("diagnostic point %v not at cursor row 2", p)
		}
	}
}

type recordingSurface struct {
	cleared int
	points  []core.Point
}

func (s *recordingSurface) Clear() { s.cleared++; s.points = s.points[:0] }

func (s *recordingSurface) SetPoint(x, y int, on bool) {
	if on {
		s.points = append(s.points, core.P(x, y))
	}
}

func TestDrawClearsThenEmitsFullFrame(t *testing.T) {
	g := New(testConfig())
	g.block.Pos = 2
	g.Step(10, buttonFrame())

	dst := &recordingSurface{}
	Draw(g, core.NewMapper(true), dst)
	Draw(g, core.NewMapper(true), dst)

	if dst.cleared != 2 {
		t.Errorf("surface cleared %d times, want once per frame", dst.cleared)
	}
	// No diffing: the second frame repeats every point.
	if len(dst.points) != 8 {
		t.Errorf("frame emitted %d points, want 8", len(dst.points))
	}
}
