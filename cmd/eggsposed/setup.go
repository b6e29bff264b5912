package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/eggsposed/internal/audio"
	"github.com/vovakirdan/eggsposed/internal/config"
	"github.com/vovakirdan/eggsposed/internal/core"
	"github.com/vovakirdan/eggsposed/internal/games/eggsposed" // registers the variants
	"github.com/vovakirdan/eggsposed/internal/registry"
	"github.com/vovakirdan/eggsposed/internal/storage"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setup parses the shared flags and configures the game package.
func setup(_ *cobra.Command, _ []string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	// A broken custom config is a user error, not something to play through.
	if flagConfig != "" {
		if _, err := config.LoadEggsposed(config.VariantMeadow, flagConfig); err != nil {
			return err
		}
	}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.DebugLevel,
			Prefix:          "eggsposed",
		})
	}

	eggsposed.SetConfigPath(flagConfig)
	eggsposed.SetDifficultyPreset(preset)
	eggsposed.SetLogger(logger)
	return nil
}

func teardown(_ *cobra.Command, _ []string) {
	if logFile == nil {
		return
	}
	logger = log.New(io.Discard)
	eggsposed.SetLogger(nil)
	logFile.Close()
	logFile = nil
}

// variantArg returns the requested variant or the default one.
func variantArg(args []string) (string, error) {
	gameID := config.VariantMeadow
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown variant %q (run 'eggsposed list')", gameID)
	}
	return gameID, nil
}

// openAudio opens the speaker according to the variant's audio section.
// It falls back to silence when audio is off or no device is available.
func openAudio(variant string) (core.Audio, func()) {
	if flagMute {
		return core.NopAudio{}, func() {}
	}

	cfg, err := config.LoadEggsposed(variant, flagConfig)
	if err != nil {
		logger.Warn("config load failed", "variant", variant, "err", err)
	}
	if !cfg.Audio.Enabled {
		return core.NopAudio{}, func() {}
	}

	bank := audio.New(audio.Config{
		Enabled: cfg.Audio.Enabled,
		Music:   cfg.Audio.Music,
		Volume:  cfg.Audio.Volume,
	})
	if err := bank.Init(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		return core.NopAudio{}, func() {}
	}
	return bank, bank.Close
}

// openStore opens the score database. Play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("store unavailable", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runtimeConfig(a core.Audio) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     flagSeed,
		Audio:    a,
	}
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
