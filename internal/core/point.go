package core

import "fmt"

// Point is a physical point address on the render surface.
// X increases to the right, Y increases downward.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
