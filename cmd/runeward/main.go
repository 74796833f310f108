// runeward is a turn-based ruin crawler for the terminal: collect the
// runes, dodge the guardians, and bring everything home to the altar.
//
// Usage:
//
//	runeward play              - Walk the ruin
//	runeward map               - Preview generated ruins as ASCII
//	runeward history           - Show finished episodes and stats
//	runeward serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Custom configuration YAML
//	--seed <value>   - Generation seed for a reproducible ruin
//	--db <path>      - Episode history database path
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/calderforge/runeward/internal/config"
	"github.com/calderforge/runeward/internal/game"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

// logger is shared by all CLI commands for warnings and errors.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "runeward",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runeward",
	Short: "Runeward - a turn-based ruin crawler in your terminal",
	Long: `Runeward drops you, the Warden, into a procedurally generated ruin.
Among the scattered pickups hide the true runes; collect them all and
return to the altar before the guardians corner you. Every ruin grows
from a seed, so any episode can be replayed exactly.

Available commands:
  play     - Walk the ruin interactively
  map      - Print generated ruins for seed hunting
  history  - View finished episodes and aggregate stats
  serve    - Start an SSH server for remote play

Examples:
  runeward play
  runeward play --seed 42
  runeward map --count 3
  runeward history --interactive
  runeward serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Generation seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.runeward/history.db", "Path to episode history database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadGameConfig resolves the episode configuration from the config
// search path, falling back to the embedded defaults on error.
func loadGameConfig() game.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.Default()
	}
	return cfg.GameConfig()
}
