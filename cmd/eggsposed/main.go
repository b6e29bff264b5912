// eggsposed is a hidden-object egg hunt played with the mouse, in the
// terminal, in a window, or over SSH.
//
// Usage:
//
//	eggsposed list                - List available variants
//	eggsposed play [variant]      - Play in the terminal
//	eggsposed window [variant]    - Play in a native window
//	eggsposed menu                - Pick a variant interactively
//	eggsposed serve               - Start SSH server for remote play
//	eggsposed scores [variant]    - Show the best rounds
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--config <path>      - Load a custom game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--log <path>         - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogPath    string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "eggsposed",
	Short: "Egg-sposed - find the hidden eggs before time runs out",
	Long: `Egg-sposed is a hidden-object game. The camera drifts over a meadow
while you sweep a spyglass with the mouse to reveal hidden eggs. Click an
egg to collect it; click a leprechaun and he runs off with one of yours.

Available commands:
  list     - Show all variants
  play     - Play in the terminal (needs mouse support)
  window   - Play in a native window
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View the best rounds

Examples:
  eggsposed play
  eggsposed play eggsposed_classic
  eggsposed window --difficulty easy
  eggsposed serve --ssh :2222
  eggsposed scores`,
	PersistentPreRunE: setup,
	PersistentPostRun: teardown,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
