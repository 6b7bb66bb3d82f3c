package display

import "strings"

// ASCII renders the presented front buffer as plain text, one rune per
// point, rows joined with newlines. Used by the replay command and in
// tests where a terminal is not available.
func ASCII(m *Matrix, on, off rune) string {
	var sb strings.Builder
	sb.Grow(m.Width()*m.Height() + m.Height())

	for y := 0; y < m.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
	}
	return sb.String()
}
