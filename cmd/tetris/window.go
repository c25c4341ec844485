package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/gui"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Left/Right   - Move (hold to repeat)
  Down         - Soft drop (while held)
  Up, X        - Rotate clockwise
  Z            - Rotate counter-clockwise
  Space        - Hard drop
  C, Shift     - Hold
  P/Esc        - Pause
  Enter        - Start / restart
  Q            - Quit

Examples:
  tetris window
  tetris window --fps 120 --seed 7`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(_ *cobra.Command, _ []string) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	err = gui.Run(gui.Options{
		Config: s.cfg,
		Runtime: core.RuntimeConfig{
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:         s.store,
		HighScorePath: s.highScorePath,
		Logger:        s.logger,
	})
	if err != nil {
		s.logger.Error("window session failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		s.Close()
		os.Exit(1)
	}
}
