package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
	flagPlayer      string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best recorded games",
	Long: `Display the highest-scoring finished games with their largest tile.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --player alice  # Most recent games of one player
  t2048 scores -i        # Scrollable table
  t2048 scores -i -p bob # Scrollable table of one player
  t2048 scores --clear   # Delete all records`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 0, "Number of games to show (default from config)")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Show a scrollable table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded games")
	scoresCmd.Flags().StringVarP(&flagPlayer, "player", "p", "", "Show the most recent games of one player")
}

func runScores(_ *cobra.Command, _ []string) error {
	limit := appConfig.Storage.TopLimit
	if flagLimit > 0 {
		limit = flagLimit
	}

	store, err := storage.Open(appConfig.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearGames(); err != nil {
			return err
		}
		fmt.Println("All recorded games deleted.")
		return nil
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, flagPlayer, limit, width, height)
	}

	var games []storage.GameRecord
	if flagPlayer != "" {
		games, err = store.PlayerGames(flagPlayer, limit)
		fmt.Printf("Recent Games - %s\n", flagPlayer)
	} else {
		games, err = store.TopGames(limit)
		fmt.Println("High Scores - 2048")
	}
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Println("Play 't2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-3s  %s\n", "Rank", "Player", "Score", "Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-6s  %-3s  %s\n", "----", "------", "-----", "----", "---", "----")

	for i, g := range games {
		won := ""
		if g.Won {
			won = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-6d  %-3s  %s\n",
			i+1, g.Player, g.Score, g.MaxTile, won, g.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetStats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Games: %d  Wins: %d  Best tile: %d\n",
			stats.HighScore, stats.GamesCount, stats.WinsCount, stats.BestTile)
	}
	return nil
}
