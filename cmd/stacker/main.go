// stacker is a terminal simulator for a single-button LED-matrix stack
// game: an oscillating block is dropped onto the stack with one button,
// the stack grows row by row, the sweep speeds up after every landing.
//
// Usage:
//
//	stacker play             - Play in the local terminal
//	stacker serve            - Start SSH server for remote play
//	stacker sessions         - List recorded play sessions
//	stacker replay <id>      - Re-simulate a recorded session
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible block spawns
//	--db <path>     - Set journal path (default: ~/.stacker/journal.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "stacker",
	Short: "Stacker - single-button stack game on a simulated LED matrix",
	Long: `Stacker simulates a single-button, single-display falling-block
stack game in your terminal. The block sweeps left and right; press the
button to drop it onto the stack. Any column that rests on the stack
survives; miss entirely and the game is over.

Available commands:
  play     - Play in the local terminal
  serve    - Start SSH server for remote play
  sessions - List recorded play sessions
  replay   - Re-simulate a recorded session from its journal

Examples:
  stacker play
  stacker play --difficulty hard
  stacker serve --ssh :2222
  stacker sessions --limit 10
  stacker replay 4f7c2b9a-...`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.stacker/journal.db", "Path to session journal database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(replayCmd)
}
