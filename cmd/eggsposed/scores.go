package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/eggsposed/internal/registry"
	"github.com/vovakirdan/eggsposed/internal/storage"
)

var (
	flagLimit  int
	flagRecent bool
	flagClear  bool
	flagRound  int64
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the best rounds for a variant",
	Long: `Display the top rounds for the specified variant, or the most recent
ones with --recent.

Examples:
  eggsposed scores
  eggsposed scores eggsposed_classic --limit 20
  eggsposed scores --recent
  eggsposed scores --round 12
  eggsposed scores eggsposed_classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the most recent rounds instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored round of the variant")
	scoresCmd.Flags().Int64Var(&flagRound, "round", 0, "Show one stored round by ID")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared all rounds of %s.\n", game.Title())
		return nil
	}
	if flagRound > 0 {
		return showRound(store, flagRound)
	}

	heading := "Best Rounds"
	fetch := store.TopRounds
	if flagRecent {
		heading = "Recent Rounds"
		fetch = store.RecentRounds
	}

	rounds, err := fetch(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving rounds: %w", err)
	}

	fmt.Printf("%s - %s\n", heading, game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'eggsposed play %s' to set the first score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-4s  %-6s  %-4s  %-6s  %-6s  %-20s  %s\n", "Rank", "ID", "Score", "Eggs", "Result", "Left", "Seed", "Date")
	fmt.Printf("  %-4s  %-4s  %-6s  %-4s  %-6s  %-6s  %-20s  %s\n", "----", "--", "-----", "----", "------", "----", "----", "----")

	for i, r := range rounds {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-4d  %-6d  %-4d  %-6s  %-6s  %-20d  %s\n",
			i+1, r.ID, r.Score, r.Eggs, r.Outcome, fmt.Sprintf("%ds", r.SecondsLeft), r.Seed, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Best: %d  Played: %d  Won: %d  Most eggs: %d\n",
			stats.HighScore, stats.GamesCount, stats.Wins, stats.BestEggs)
	}
	fmt.Println("Replay a round with 'eggsposed play --seed <seed>'.")
	return nil
}

// showRound prints one stored round with the command that replays its world.
func showRound(store *storage.Store, id int64) error {
	r, err := store.RoundByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no round with ID %d", id)
	}

	fmt.Printf("Round %d - %s\n\n", r.ID, r.GameID)
	fmt.Printf("  Result:  %s\n", r.Outcome)
	fmt.Printf("  Score:   %d\n", r.Score)
	fmt.Printf("  Eggs:    %d\n", r.Eggs)
	fmt.Printf("  Left:    %ds\n", r.SecondsLeft)
	fmt.Printf("  Played:  %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay with 'eggsposed play %s --seed %d'.\n", r.GameID, r.Seed)
	return nil
}
