package stack

import "github.com/stackmatrix/stacker/internal/core"

// BuildFrame composes the grid, the in-flight block and the current mode
// into the full list of physical points to illuminate. The frame is
// always rebuilt from current state, never diffed, so the surface is
// never shown a partially-updated frame relative to the model.
//
// Diagnostic mode emits one point per column at the cursor row and
// ignores grid and block entirely. Otherwise every occupied cell is
// emitted, plus the block's span while it is oscillating.
func BuildFrame(g *Game, m core.Mapper) []core.Point {
	cfg := g.Config()

	if g.Mode() == ModeDiagnostic {
		pts := make([]core.Point, 0, cfg.Cols)
		for c := 0; c < cfg.Cols; c++ {
			pts = append(pts, m.Map(g.TestRow(), c))
		}
		return pts
	}

	grid := g.Grid()
	pts := make([]core.Point, 0, grid.OccupiedCount()+cfg.BlockWidth)
	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			if grid.IsOccupied(r, c) {
				pts = append(pts, m.Map(r, c))
			}
		}
	}

	b := g.Block()
	if g.Mode() != ModeGameOver && b.Active {
		for c := b.Pos; c < b.Pos+cfg.BlockWidth; c++ {
			pts = append(pts, m.Map(b.Row, c))
		}
	}
	return pts
}

// Draw renders a full frame onto the surface: a clear followed by one
// SetPoint per frame point.
func Draw(g *Game, m core.Mapper, dst core.Surface) {
	dst.Clear()
	for _, p := range BuildFrame(g, m) {
		dst.SetPoint(p.X, p.Y, true)
	}
}
