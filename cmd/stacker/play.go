package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/stackmatrix/stacker/internal/config"
	"github.com/stackmatrix/stacker/internal/platform/tui"
	"github.com/stackmatrix/stacker/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRotate     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start the simulator in the local terminal.

Controls:
  Space      - The button: drop the block (or restart after game over)
  D          - Toggle diagnostic mode (row test pattern)
  N          - Advance the diagnostic cursor
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower sweep, gentler ramp
  normal - Reference speed curve
  hard   - Fast sweep, aggressive ramp
  fixed  - No ramp, stays at the configured initial speed

Examples:
  stacker play
  stacker play --difficulty easy
  stacker play --config ./my-stacker.yaml
  stacker play --rotate=false`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagRotate, "rotate", true, "Swap logical axes when mapping to the panel")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset := config.DifficultyPreset(flagDifficulty)
		switch preset {
		case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
			config.ApplyPreset(&cfg, preset)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
			os.Exit(1)
		}
	}
	if cmd.Flags().Changed("rotate") {
		cfg.Display.Rotate = flagRotate
	}

	rt := cfg.Runtime(flagFPS, flagSeed)

	// Panel view size in terminal cells, plus status and help lines.
	panelW, panelH := rt.Rows, rt.Cols
	if rt.Rotate {
		panelW, panelH = rt.Cols, rt.Rows
	}
	needW := panelW*len([]rune(cfg.Display.On)) + 2
	needH := panelH + 4
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Warning: terminal %dx%d is smaller than the %dx%d panel view\n",
				w, h, needW, needH)
		}
	}

	// Open the session journal
	journal, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session journal: %v\n", err)
		// Continue without journaling - the game still works
		journal = nil
	}

	runErr := tui.Run(cfg, rt, journal, nil)

	if journal != nil {
		journal.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running simulator: %v\n", runErr)
		os.Exit(1)
	}
}
