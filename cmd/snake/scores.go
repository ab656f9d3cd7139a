package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-tui/internal/platform/tui"
	"github.com/vovakirdan/snake-tui/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display recorded high scores.

By default opens an interactive, scrollable table. Use --plain for
non-interactive output suitable for piping.

Examples:
  snake scores
  snake scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores without the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top scores and aggregate stats to stdout.
func printScores(store *storage.Store) {
	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Snake")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, entry.Player, entry.Score, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Games played: %d  Best: %d  Average: %.1f\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
}
