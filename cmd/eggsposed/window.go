package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggsposed/internal/platform/window"
	"github.com/vovakirdan/eggsposed/internal/registry"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a native window",
	Long: `Open a window and play with the mouse. The grid is scaled up by
--scale screen pixels per grid pixel.

Controls:
  Mouse    - Move the spyglass, click to collect
  P/Esc    - Pause
  R        - Restart (after the round ends)
  Q        - Quit

Examples:
  eggsposed window
  eggsposed window eggsposed_classic --scale 24`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", window.DefaultScale, "Screen pixels per grid pixel")
}

func runWindow(_ *cobra.Command, args []string) error {
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

	if err := window.Run(game, store, runtimeConfig(a), flagScale, logger); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
