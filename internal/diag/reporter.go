// Package diag provides the optional line-oriented status sink for game
// state transitions. The sink is informational only: a nil Reporter is
// valid everywhere and every method is a no-op on it, so its absence
// never affects game logic.
package diag

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/stackmatrix/stacker/internal/stack"
)

// Reporter writes game transitions as structured status lines.
type Reporter struct {
	logger *log.Logger
}

// New creates a reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{
		logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			Prefix:          "stacker",
		}),
	}
}

// Event reports a single game transition.
func (r *Reporter) Event(atMs int64, ev stack.Event, s stack.GameState) {
	if r == nil {
		return
	}
	switch ev.Kind {
	case stack.EventLanded:
		r.logger.Info("block landed",
			"at_ms", atMs, "row", ev.Row,
			"height", s.StackHeight, "delay_ms", s.MoveDelayMs)
	case stack.EventMissed:
		r.logger.Info("game over", "at_ms", atMs, "reason", "missed", "row", ev.Row)
	case stack.EventToppedOut:
		r.logger.Info("game over", "at_ms", atMs, "reason", "topped_out", "height", s.StackHeight)
	case stack.EventReset:
		r.logger.Info("game reset", "at_ms", atMs, "delay_ms", s.MoveDelayMs)
	case stack.EventDiagEnter:
		r.logger.Info("diagnostic mode entered", "at_ms", atMs)
	case stack.EventDiagExit:
		r.logger.Info("diagnostic mode exited", "at_ms", atMs)
	case stack.EventDiagAdvance:
		r.logger.Debug("diagnostic cursor", "at_ms", atMs, "row", ev.Row)
	}
}

// Events reports every transition from one simulation step.
func (r *Reporter) Events(atMs int64, res stack.StepResult) {
	if r == nil {
		return
	}
	for _, ev := range res.Events {
		r.Event(atMs, ev, res.State)
	}
}

// Line emits a free-form status line.
func (r *Reporter) Line(msg string, keyvals ...any) {
	if r == nil {
		return
	}
	r.logger.Info(msg, keyvals...)
}
