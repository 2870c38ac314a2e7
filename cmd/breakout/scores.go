package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/platform/tui"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

var (
	flagScoresTUI    bool
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games, or one player's recent games.

Examples:
  breakout scores
  breakout scores --limit 20
  breakout scores --player ada
  breakout scores --tui
  breakout scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the most recent games of one player")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded results")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(storage.ResolvePath(flagDBPath))
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(breakout.GameID); err != nil {
			return err
		}
		fmt.Println("All results deleted.")
		return nil

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		_, err := tui.RunScoreboard(store, width, height, flagScoresPlayer)
		return err
	}

	var results []storage.Result
	if flagScoresPlayer != "" {
		results, err = store.PlayerResults(breakout.GameID, flagScoresPlayer, flagScoresLimit)
		fmt.Printf("Recent games - %s\n\n", flagScoresPlayer)
	} else {
		results, err = store.TopScores(breakout.GameID, flagScoresLimit)
		fmt.Print("High Scores - Breakout\n\n")
	}
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakout play' to set the first high score!")
		return nil
	}

	printResults(results)

	stats, err := store.GetGameStats(breakout.GameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Games: %d  |  Wins: %d  |  Best level: %d\n",
		stats.HighScore, stats.GamesCount, stats.Wins, stats.BestLevel)
	return nil
}

// printResults writes a plain-text results table.
func printResults(results []storage.Result) {
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Result", "Date")
	fmt.Printf("  %-4s  %-12s  %-7s  %-5s  %-6s  %s\n", "----", "------", "-----", "-----", "------", "----")

	for i, r := range results {
		player := r.Player
		if player == "" {
			player = "-"
		}
		outcome := "lost"
		if r.Won {
			outcome = "won"
		}
		fmt.Printf("  %-4d  %-12s  %-7d  %-5d  %-6s  %s\n",
			i+1, player, r.Score, r.Level, outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
