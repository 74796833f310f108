package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/calderforge/runeward/internal/platform/tui"
	"github.com/calderforge/runeward/internal/storage"
)

var (
	flagHistoryLimit       int
	flagHistoryInteractive bool
	flagHistoryBest        bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show finished episodes",
	Long: `Print the episode history: recent playthroughs, best victories,
and aggregate stats. With --interactive, browse the history in a
scrollable table instead.

Examples:
  runeward history
  runeward history --limit 5
  runeward history --best
  runeward history --interactive`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of episodes to show")
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "Show best victories instead of recent episodes")
	historyCmd.Flags().BoolVar(&flagHistoryInteractive, "interactive", false, "Browse history in an interactive table")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open history database: %w", err)
	}
	defer store.Close()

	if flagHistoryInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Printf("Played: %d  Won: %d", stats.Played, stats.Won)
	if stats.BestMoves > 0 {
		fmt.Printf("  Best victory: %d moves", stats.BestMoves)
	}
	fmt.Println()

	var episodes []storage.Episode
	if flagHistoryBest {
		episodes, err = store.BestVictories(flagHistoryLimit)
	} else {
		episodes, err = store.RecentEpisodes(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes recorded yet.")
		return nil
	}

	fmt.Println()
	fmt.Printf("%-4s %-8s %6s %6s %20s  %s\n", "#", "Result", "Moves", "Runes", "Seed", "Played")
	for i, e := range episodes {
		result := "defeat"
		if e.Victory {
			result = "victory"
		}
		fmt.Printf("%-4d %-8s %6d %6d %20d  %s\n",
			i+1, result, e.Moves, e.RunesCollected, e.Seed,
			e.PlayedAt.Format("2006-01-02 15:04"))
	}

	return nil
}
