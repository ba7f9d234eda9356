package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [player]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs, optionally for a single player.

Examples:
  flappy scores
  flappy scores alice --limit 5
  flappy scores --tui
  flappy scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (best scores are kept)")
}

func runScores(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open runs database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.Cols, cfg.Rows)
		return err
	}

	var runs []storage.Run
	title := "High Scores"
	if len(args) == 1 {
		title = fmt.Sprintf("High Scores - %s", args[0])
		runs, err = store.PlayerRuns(args[0], flagScoresLimit)
	} else {
		runs, err = store.TopRuns(flagScoresLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	printRuns(cmd.OutOrStdout(), title, runs, stats)
	return nil
}

// printRuns writes the plain-text score table.
func printRuns(w io.Writer, title string, runs []storage.Run, stats *storage.Stats) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Stars", "Time", "Date")
	fmt.Fprintf(w, "  %-4s  %-12s  %-6s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")

	for i, r := range runs {
		d := r.Duration.Round(time.Second)
		fmt.Fprintf(w, "  %-4d  %-12s  %-6d  %-6d  %-6s  %s\n",
			i+1, r.Player, r.Score, r.Stars,
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil && stats.Runs > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Average: %.1f  Stars: %d\n",
			stats.HighScore, stats.Runs, stats.AvgScore, stats.TotalStars)
	}
}
