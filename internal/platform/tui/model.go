// Package tui provides the Bubble Tea integration for the stacker
// simulator: the polling loop, input mapping onto the debounced button
// contract, the matrix view and SSH server support.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stackmatrix/stacker/internal/config"
	"github.com/stackmatrix/stacker/internal/core"
	"github.com/stackmatrix/stacker/internal/diag"
	"github.com/stackmatrix/stacker/internal/display"
	"github.com/stackmatrix/stacker/internal/stack"
	"github.com/stackmatrix/stacker/internal/storage"
)

// Model is the Bubble Tea model driving one simulator instance. Game
// time is logical tick time (ticks * tick interval), not wall time, so
// a recorded session replays exactly regardless of timer jitter.
type Model struct {
	game     *stack.Game
	cfg      config.Config
	runtime  core.RuntimeConfig
	mapper   core.Mapper
	matrix   *display.Matrix
	deb      *core.Debouncer
	journal  *storage.Journal
	reporter *diag.Reporter
	keys     KeyMap
	help     help.Model

	ticks        int64
	tickMs       int64
	pressedUntil int64 // Simulated button level deadline, logical ms
	frame        core.InputFrame
	state        stack.GameState
	sessionID    string
	flashOn      bool
	lastFlashMs  int64
	quitting     bool
}

// NewModel creates a simulator model. journal and reporter may be nil;
// both are strictly best-effort collaborators.
func NewModel(cfg config.Config, rt core.RuntimeConfig, journal *storage.Journal, reporter *diag.Reporter) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	// Physical matrix dimensions follow the mapper orientation.
	w, h := rt.Rows, rt.Cols
	if rt.Rotate {
		w, h = rt.Cols, rt.Rows
	}

	tickMs := int64(1000 / rt.TickRate)
	if tickMs < 1 {
		tickMs = 1
	}

	game := stack.New(rt)

	m := Model{
		game:     game,
		cfg:      cfg,
		runtime:  rt,
		mapper:   core.NewMapper(rt.Rotate),
		matrix:   display.NewMatrix(w, h),
		deb:      core.NewDebouncer(cfg.Input.DebounceMs),
		journal:  journal,
		reporter: reporter,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		tickMs:   tickMs,
		frame:    core.NewInputFrame(),
		state:    game.State(),
		flashOn:  true,
	}

	if journal != nil {
		id, err := journal.BeginSession(storage.Session{
			Seed:           rt.Seed,
			Rows:           rt.Rows,
			Cols:           rt.Cols,
			BlockWidth:     rt.BlockWidth,
			InitialDelayMs: rt.InitialDelayMs,
			StepMs:         rt.DelayStepMs,
			MinDelayMs:     rt.MinDelayMs,
			TickRate:       rt.TickRate,
		})
		if err == nil {
			m.sessionID = id
		}
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// nowMs returns the current logical game time.
func (m Model) nowMs() int64 {
	return m.ticks * m.tickMs
}

// handleKey processes keyboard input. The game button is simulated as a
// level held for a short window, so the debouncer sees the same
// rising-to-falling shape a physical button would produce.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.endSession()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Button):
		m.pressedUntil = m.nowMs() + m.cfg.Input.HoldMs
	case key.Matches(msg, m.keys.Diag):
		m.frame.Set(core.ActionDiagToggle)
	case key.Matches(msg, m.keys.Advance):
		m.frame.Set(core.ActionDiagAdvance)
	}
	return m, nil
}

// handleTick runs one pass of the polling loop: sample the button level
// through the debouncer, step the game, journal confirmed inputs, then
// rebuild and present the frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticks++
	now := m.nowMs()

	level := now < m.pressedUntil
	if m.deb.Sample(level, now) {
		m.frame.Set(core.ActionButton)
	}

	m.logInputs(now)

	res := m.game.Step(now, m.frame)
	m.state = res.State
	m.reporter.Events(now, res)

	// Game-over flash cadence, platform-side.
	if m.state.Mode == stack.ModeGameOver {
		if now-m.lastFlashMs >= m.cfg.Display.FlashMs {
			m.flashOn = !m.flashOn
			m.lastFlashMs = now
		}
	} else {
		m.flashOn = true
		m.lastFlashMs = now
	}

	stack.Draw(m.game, m.mapper, m.matrix)
	m.matrix.Swap()

	m.frame.Clear()
	return m, tickCmd(m.runtime.TickRate)
}

// logInputs journals the confirmed input events of this tick.
func (m Model) logInputs(now int64) {
	if m.journal == nil || m.sessionID == "" {
		return
	}
	for action, kind := range journalKinds {
		if m.frame.Has(action) {
			//nolint:errcheck // Best-effort journal, game continues regardless
			m.journal.LogEvent(m.sessionID, now, kind)
		}
	}
}

// journalKinds maps journaled actions to their stored event kinds.
var journalKinds = map[core.Action]string{
	core.ActionButton:      "button",
	core.ActionDiagToggle:  "diag_toggle",
	core.ActionDiagAdvance: "diag_advance",
}

// endSession closes the journal session with the final outcome.
func (m Model) endSession() {
	if m.journal == nil || m.sessionID == "" {
		return
	}
	reason := "quit"
	if m.state.Mode == stack.ModeGameOver {
		reason = m.state.Reason.String()
	}
	//nolint:errcheck // Best-effort journal
	m.journal.EndSession(m.sessionID, reason)
}

// View renders the matrix, a status line and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return renderView(m)
}

// Run drives a simulator to completion in the local terminal.
func Run(cfg config.Config, rt core.RuntimeConfig, journal *storage.Journal, reporter *diag.Reporter) error {
	p := tea.NewProgram(NewModel(cfg, rt, journal, reporter), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
