package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dino-jump/internal/storage"
)

var (
	flagTop   int
	flagReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best score and top runs",
	Long: `Display the best score and the top runs recorded so far.

Examples:
  dinojump scores
  dinojump scores --top 20
  dinojump scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagTop, "top", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the best score and all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagReset {
		if err := store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "Error resetting scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores reset.")
		return
	}

	best, err := store.BestScore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading best score: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(flagTop)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	stats, err := store.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		os.Exit(1)
	}

	writeScores(os.Stdout, best, scores, stats)
}

// writeScores prints the best score, the ranked runs and the run totals.
func writeScores(w io.Writer, best int, scores []storage.ScoreEntry, stats *storage.Stats) {
	fmt.Fprintf(w, "High Score: %d\n", best)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'dinojump play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Runs: %d  Best run: %d  Total: %d  Average: %.1f\n",
		stats.Runs, stats.HighScore, stats.TotalScore, stats.AvgScore)
	fmt.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
}
