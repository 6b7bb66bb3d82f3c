package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackmatrix/stacker/internal/config"
	"github.com/stackmatrix/stacker/internal/core"
	"github.com/stackmatrix/stacker/internal/diag"
	"github.com/stackmatrix/stacker/internal/display"
	"github.com/stackmatrix/stacker/internal/stack"
	"github.com/stackmatrix/stacker/internal/storage"
)

var flagReplayQuiet bool

var replayCmd = &cobra.Command{
	Use:   "replay <session-id>",
	Short: "Re-simulate a recorded session",
	Long: `Re-run a recorded session from its journal entry.

The game is deterministic given the recorded seed, shape, speed curve
and input events, so the replay reproduces the session exactly. Every
state transition is reported as a status line and the final frame is
printed when the simulation ends.

Examples:
  stacker replay 4f7c2b9a-1c0e-4b61-9a57-5f6d9c2e8a11
  stacker replay --quiet 4f7c2b9a-1c0e-4b61-9a57-5f6d9c2e8a11`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayQuiet, "quiet", false, "Only print the outcome and final frame")
}

func runReplay(_ *cobra.Command, args []string) {
	journal, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	sess, err := journal.Session(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	events, err := journal.Events(sess.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var reporter *diag.Reporter
	if !flagReplayQuiet {
		reporter = diag.New(os.Stdout)
	}

	snap, g := simulate(sess, events, reporter)

	fmt.Println()
	fmt.Printf("Session %s\n", sess.ID)
	fmt.Printf("  mode: %s", snap.Mode)
	if snap.Mode == stack.ModeGameOver {
		fmt.Printf(" (%s)", snap.Reason)
	}
	fmt.Println()
	fmt.Printf("  stack height: %d  cells: %d  delay: %dms\n",
		snap.StackHeight, snap.Occupied, snap.MoveDelayMs)
	fmt.Println()
	fmt.Println(finalFrame(g))
}

// simulate re-runs a session: the recorded events are fed back at their
// recorded times while the game is stepped at the recorded tick cadence.
func simulate(sess storage.Session, events []storage.EventRecord, reporter *diag.Reporter) (stack.Snapshot, *stack.Game) {
	rt := core.RuntimeConfig{
		Rows:           sess.Rows,
		Cols:           sess.Cols,
		BlockWidth:     sess.BlockWidth,
		InitialDelayMs: sess.InitialDelayMs,
		DelayStepMs:    sess.StepMs,
		MinDelayMs:     sess.MinDelayMs,
		TickRate:       sess.TickRate,
		Seed:           sess.Seed,
	}
	g := stack.New(rt)

	tickMs := int64(1000 / rt.TickRate)
	if tickMs < 1 {
		tickMs = 1
	}
	endMs := int64(0)
	if len(events) > 0 {
		endMs = events[len(events)-1].AtMs
	}
	// Run a short tail past the last input so trailing motion settles.
	endMs += 2 * sess.InitialDelayMs

	idx := 0
	for now := tickMs; now <= endMs; now += tickMs {
		in := core.NewInputFrame()
		for idx < len(events) && events[idx].AtMs <= now {
			switch events[idx].Kind {
			case "button":
				in.Set(core.ActionButton)
			case "diag_toggle":
				in.Set(core.ActionDiagToggle)
			case "diag_advance":
				in.Set(core.ActionDiagAdvance)
			}
			idx++
		}
		res := g.Step(now, in)
		reporter.Events(now, res)
	}

	return g.Snapshot(), g
}

// finalFrame renders the game's last frame as text, using the default
// display orientation.
func finalFrame(g *stack.Game) string {
	cfg := g.Config()
	disp := config.Default().Display
	w, h := cfg.Rows, cfg.Cols
	if disp.Rotate {
		w, h = cfg.Cols, cfg.Rows
	}

	m := display.NewMatrix(w, h)
	stack.Draw(g, core.NewMapper(disp.Rotate), m)
	m.Swap()
	return display.ASCII(m, '#', '.')
}
