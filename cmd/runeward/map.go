package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/calderforge/runeward/internal/game"
	"github.com/calderforge/runeward/internal/view"
)

var flagMapCount int

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Preview generated ruins",
	Long: `Generate episodes and print them as ASCII maps, without playing.
Useful for hunting interesting seeds and for debugging generation.

With --seed the first preview uses that seed and later ones count up
from it, so a printed ruin can always be played back with
'runeward play --seed <n>'.

Examples:
  runeward map
  runeward map --seed 42
  runeward map --count 5`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().IntVar(&flagMapCount, "count", 1, "Number of ruins to preview")
}

func runMap(_ *cobra.Command, _ []string) error {
	cfg := loadGameConfig()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	for i := 0; i < flagMapCount; i++ {
		g, err := game.New(cfg, base+int64(i))
		if err != nil {
			return fmt.Errorf("cannot generate ruin: %w", err)
		}
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(view.RenderASCII(g.Snapshot()))
	}

	return nil
}
