// tetris is a falling-block puzzle game for the terminal and the desktop.
//
// Usage:
//
//	tetris [play]            - Play in the terminal
//	tetris window            - Play in a desktop window
//	tetris scores            - Show the run history
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load a custom tetris.yaml
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--highscore <path>    - Set high score file (default: ~/.tetris/highscore.txt)
//	--log <path>          - Set log file (default: ~/.tetris/tetris.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagConfig    string
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
	flagDebug     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a falling-block puzzle game that runs in the terminal
or in a desktop window.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  scores   - View the run history
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --seed 42
  tetris window
  tetris scores --limit 5
  tetris config --config ./my-tetris.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tetris config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tetris/scores.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "~/.tetris/highscore.txt", "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.tetris/tetris.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
