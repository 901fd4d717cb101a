package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagLimit  int
	flagPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores across all players, highest first.
Equal scores are listed in the order they were recorded.

Examples:
  snake scores
  snake scores --limit 5
  snake scores --player alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 0, "Number of rows (default: rules.leaderboard_size)")
	scoresCmd.Flags().StringVar(&flagPlayer, "player", "", "Also show this player's best score")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, err := loadSettings()
	if err != nil {
		exitf("%v", err)
	}

	limit := flagLimit
	if limit <= 0 {
		limit = cfg.Rules.LeaderboardSize
	}

	store, err := openStore(cmd.Context(), cfg)
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Storage.Timeout)
	defer cancel()

	entries, err := store.TopScores(ctx, limit)
	if err != nil {
		store.Close()
		exitf("retrieving scores: %v", err)
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Println(tui.RenderScoreTable(entries))

	if len(entries) == 0 {
		fmt.Println()
		fmt.Println("Play 'snake play' to set the first high score!")
		return
	}

	fmt.Println()
	if best, err := store.HighScore(ctx); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if flagPlayer != "" {
		best, err := store.PlayerBest(ctx, flagPlayer)
		if err != nil {
			store.Close()
			exitf("retrieving best for %s: %v", flagPlayer, err)
		}
		fmt.Printf("Best for %s: %d\n", flagPlayer, best)
	}
}
