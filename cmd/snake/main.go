// snake is a classic terminal snake game.
//
// Usage:
//
//	snake                 - Play (same as 'snake play')
//	snake play            - Play in the current terminal
//	snake scores          - Show the high score table
//	snake serve           - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is a terminal game: steer the snake with the arrow keys or WASD,
eat food to grow, and avoid the walls and your own tail.

Available commands:
  play     - Play in the current terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  snake
  snake play --difficulty hard
  snake scores
  snake serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
