package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calderforge/runeward/internal/config"
	"github.com/calderforge/runeward/internal/game"
	"github.com/calderforge/runeward/internal/platform/tui"
	"github.com/calderforge/runeward/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Walk the ruin",
	Long: `Start an interactive episode in the current terminal.

Controls:
  Arrows/WASD  - Move the Warden one tile
  R            - Restart with a fresh ruin
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Difficulty presets scale the guardian count and the rubble:
  easy, normal, hard

Examples:
  runeward play
  runeward play --seed 42
  runeward play --difficulty hard
  runeward play --config ./my-ruin.yaml`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg := loadGameConfig()
	if flagDifficulty != "" {
		preset, err := config.PresetByName(flagDifficulty)
		if err != nil {
			return err
		}
		cfg = preset.Apply(cfg)
	}

	g, err := game.New(cfg, flagSeed)
	if err != nil {
		return fmt.Errorf("cannot start episode: %w", err)
	}

	// The frame needs the whole map plus the HUD; warn early instead
	// of rendering a clipped ruin.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.Width || h < cfg.Height+4 {
			logger.Warn("terminal smaller than the ruin, frame will clip",
				"terminal", fmt.Sprintf("%dx%d", w, h),
				"needed", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height+4),
			)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		store = nil // play without history
	}
	if store != nil {
		defer store.Close()
	}

	return tui.Run(g, store)
}
