package stack

// Dir represents the horizontal sweep direction of the moving block.
type Dir int

const (
	DirLeft Dir = iota
	DirRight
)

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Block is the transient in-flight block. Pos is the leftmost logical
// column; while Active, 0 <= Pos <= cols-width holds. Row starts at 0
// and only increases. A block is consumed (Active=false) on drop
// resolution and respawned when the next row is entered.
type Block struct {
	Pos    int
	Row    int
	Dir    Dir
	Active bool
}
