package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stackmatrix/stacker/internal/storage"
)

var flagSessionLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded play sessions",
	Long: `Display the most recent play sessions from the journal, newest first.

Each session records the seed, grid shape and speed curve it was played
with, plus every confirmed input event, so it can be re-simulated with
'stacker replay <id>'.`,
	Run: runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagSessionLimit, "limit", 20, "Maximum number of sessions to show")
}

func runSessions(_ *cobra.Command, _ []string) {
	journal, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	sessions, err := journal.Sessions(flagSessionLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'stacker play' to record the first one.")
		return
	}

	fmt.Printf("  %-36s  %-16s  %-7s  %-10s  %s\n", "ID", "Started", "Grid", "Outcome", "Seed")
	fmt.Printf("  %-36s  %-16s  %-7s  %-10s  %s\n", "--", "-------", "----", "-------", "----")

	for _, s := range sessions {
		started := "-"
		if !s.StartedAt.IsZero() {
			started = s.StartedAt.Format("2006-01-02 15:04")
		}
		outcome := s.EndReason
		if outcome == "" {
			outcome = "open"
		}
		grid := fmt.Sprintf("%dx%dx%d", s.Rows, s.Cols, s.BlockWidth)
		fmt.Printf("  %-36s  %-16s  %-7s  %-10s  %d\n", s.ID, started, grid, outcome, s.Seed)
	}

	fmt.Println()
	fmt.Println("Run 'stacker replay <id>' to re-simulate a session.")
}
