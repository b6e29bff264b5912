package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggsposed/internal/audio"
	"github.com/vovakirdan/eggsposed/internal/config"
	"github.com/vovakirdan/eggsposed/internal/platform/tui"
	"github.com/vovakirdan/eggsposed/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Press B after a round ends to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Best rounds
  Q            - Quit

Examples:
  eggsposed menu
  eggsposed menu --fps 30
  eggsposed menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()

	// The speaker opens once per process.
	a, closeAudio := openAudio(config.VariantMeadow)
	defer closeAudio()

	width, height := terminalSize()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		width, height = menuResult.Width, menuResult.Height

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, width, height)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		if err := tui.Run(game, store, runtimeConfig(a)); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if bank, ok := a.(*audio.Bank); ok {
			bank.StopMusic()
		}
	}

	if store != nil {
		store.Close()
	}
}
