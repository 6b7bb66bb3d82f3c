package core

// Mapper translates a logical (row, column) pair into the physical point
// address used by the render surface. The game reasons in rows (height)
// and columns (width); the physical panel's native axes may not match, so
// the mapper optionally swaps them. The same transform is applied to
// every drawn point so the whole frame stays consistent. No other
// transform (flip, offset) is supported.
type Mapper struct {
	rotate bool
}

// NewMapper creates a mapper. With rotate set, logical rows map to the
// physical Y axis instead of X.
func NewMapper(rotate bool) Mapper {
	return Mapper{rotate: rotate}
}

// Map converts a logical coordinate to a physical point.
func (m Mapper) Map(row, col int) Point {
	if m.rotate {
		return Point{X: col, Y: row}
	}
	return Point{X: row, Y: col}
}

// Rotated reports whether the mapper swaps axes.
func (m Mapper) Rotated() bool {
	return m.rotate
}
