package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggsposed/internal/platform/tui"
	"github.com/vovakirdan/eggsposed/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal. The terminal must report mouse motion;
each grid pixel is drawn two columns wide.

Controls:
  Mouse      - Move the spyglass, click to collect
  P/Esc      - Pause
  R          - Restart (after the round ends)
  Ctrl+S     - Save a PNG screenshot to ~/.arcade/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - More time and a wider capture radius
  normal - The variant's own settings
  hard   - Less time and a tighter capture radius
  fixed  - Exactly what the config file says

Examples:
  eggsposed play
  eggsposed play eggsposed_classic
  eggsposed play --difficulty hard
  eggsposed play --config ./my-meadow.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	a, closeAudio := openAudio(gameID)
	defer closeAudio()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig(a)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
