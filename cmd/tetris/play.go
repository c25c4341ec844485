package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D, H/L  - Move
  Down, S, J            - Soft drop
  Up, X, W, K           - Rotate clockwise
  Z                     - Rotate counter-clockwise
  Space                 - Hard drop
  C                     - Hold
  P/Esc                 - Pause
  Enter                 - Start / restart
  Tab                   - Run history (menu and game over)
  Q/Ctrl+C              - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s, err := openSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	err = tui.Run(tui.Options{
		Config: s.cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:         s.store,
		HighScorePath: s.highScorePath,
		Logger:        s.logger,
	})
	if err != nil {
		s.logger.Error("terminal session failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		s.Close()
		os.Exit(1)
	}
}
