// Package display provides in-memory render surfaces for the LED
// matrix. The real panel driver lives behind the same core.Surface
// contract; these implementations back the terminal simulator, replay
// output and tests.
package display

// Matrix is a double-buffered point matrix. Frames are drawn into the
// back buffer (Clear + SetPoint) and presented atomically with Swap, so
// readers of the front buffer never observe a partially-drawn frame.
type Matrix struct {
	w, h  int
	back  []bool
	front []bool
}

// NewMatrix creates a matrix with the given physical dimensions.
func NewMatrix(w, h int) *Matrix {
	return &Matrix{
		w:     w,
		h:     h,
		back:  make([]bool, w*h),
		front: make([]bool, w*h),
	}
}

// Width returns the matrix width in points.
func (m *Matrix) Width() int {
	return m.w
}

// Height returns the matrix height in points.
func (m *Matrix) Height() int {
	return m.h
}

// Clear turns off every point in the back buffer.
func (m *Matrix) Clear() {
	for i := range m.back {
		m.back[i] = false
	}
}

// SetPoint sets a point in the back buffer.
// Out-of-bounds coordinates are silently ignored.
func (m *Matrix) SetPoint(x, y int, on bool) {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return
	}
	m.back[y*m.w+x] = on
}

// Swap presents the back buffer as the new front buffer.
func (m *Matrix) Swap() {
	copy(m.front, m.back)
}

// At reads a point from the presented front buffer.
// Returns false for out-of-bounds coordinates.
func (m *Matrix) At(x, y int) bool {
	if x < 0 || x >= m.w || y < 0 || y >= m.h {
		return false
	}
	return m.front[y*m.w+x]
}

// LitCount returns the number of lit points in the front buffer.
func (m *Matrix) LitCount() int {
	count := 0
	for _, on := range m.front {
		if on {
			count++
		}
	}
	return count
}
