package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/knifefall/internal/storage"
)

var (
	flagScoresLimit  int
	flagScoresPlayer string
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs and overall statistics.

Examples:
  knifefall scores
  knifefall scores --limit 25
  knifefall scores --player alice
  knifefall scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show only this player's most recent runs")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All runs deleted.")
		return
	}

	var runs []storage.Run
	title := "High Scores - Knifefall"
	if flagScoresPlayer != "" {
		title = fmt.Sprintf("Recent runs - %s", flagScoresPlayer)
		runs, err = store.PlayerRuns(flagScoresPlayer, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'knifefall play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %-10s  %-8s  %s\n", "Rank", "Score", "Player", "Speed", "Difficulty", "Time", "Played")
	fmt.Printf("  %-4s  %-8s  %-12s  %-6s  %-10s  %-8s  %s\n", "----", "-----", "------", "-----", "----------", "----", "------")

	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		difficulty := r.Difficulty
		if difficulty == "" {
			difficulty = "-"
		}
		fmt.Printf("  %-4d  %-8s  %-12s  %-6s  %-10s  %-8s  %s\n",
			i+1,
			humanize.Comma(int64(r.Score)),
			player,
			fmt.Sprintf("%.1fx", r.Speed),
			difficulty,
			r.Duration.Round(time.Second).String(),
			humanize.Time(r.CreatedAt),
		)
	}

	// Show overall statistics
	stats, err := store.GetStats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %s  Best: %s  Average: %.1f  Total: %s  Top speed: %.1fx\n",
			humanize.Comma(int64(stats.RunsCount)),
			humanize.Comma(int64(stats.HighScore)),
			stats.AvgScore,
			humanize.Comma(stats.TotalScore),
			stats.TopSpeed,
		)
	}
}
