package stack

// Snapshot captures the complete game state for determinism testing and
// session replay verification.
type Snapshot struct {
	Mode        Mode
	Reason      OverReason
	StackHeight int
	Occupied    int
	BlockPos    int
	BlockRow    int
	BlockDir    Dir
	BlockActive bool
	MoveDelayMs int64
	TestRow     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:        g.mode,
		Reason:      g.reason,
		StackHeight: g.grid.StackHeight(),
		Occupied:    g.grid.OccupiedCount(),
		BlockPos:    g.block.Pos,
		BlockRow:    g.block.Row,
		BlockDir:    g.block.Dir,
		BlockActive: g.block.Active,
		MoveDelayMs: g.moveDelayMs,
		TestRow:     g.testRow,
	}
}
