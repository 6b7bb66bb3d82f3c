package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/stackmatrix/stacker/internal/stack"
)

var (
	litStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	darkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("245"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// renderView draws the presented matrix with a status line above and
// the key help below. During the game-over flash the whole panel blinks
// dark; the model state underneath is untouched.
func renderView(m Model) string {
	blank := m.state.Mode == stack.ModeGameOver && !m.flashOn

	var sb strings.Builder
	sb.Grow(m.matrix.Width()*m.matrix.Height()*2 + m.matrix.Height())
	for y := 0; y < m.matrix.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < m.matrix.Width(); x++ {
			if !blank && m.matrix.At(x, y) {
				sb.WriteString(litStyle.Render(m.cfg.Display.On))
			} else {
				sb.WriteString(darkStyle.Render(m.cfg.Display.Off))
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusLine(m.state),
		panelStyle.Render(sb.String()),
		m.help.View(m.keys),
	)
}

// statusLine summarizes the game state for the line above the panel.
func statusLine(s stack.GameState) string {
	switch s.Mode {
	case stack.ModeDiagnostic:
		return statusStyle.Render(fmt.Sprintf(" stacker · diagnostic · row %d", s.TestRow))
	case stack.ModeGameOver:
		return overStyle.Render(fmt.Sprintf(" game over (%s) · press button to restart", s.Reason))
	default:
		return statusStyle.Render(fmt.Sprintf(" stacker · height %d · delay %dms", s.StackHeight, s.MoveDelayMs))
	}
}
