package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/northern-dash/internal/games/dash"
	"github.com/vovakirdan/northern-dash/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs with Santa's verdicts.

Examples:
  dash scores
  dash scores --limit 25
  dash scores --clear
  dash scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagScoresClear {
		if err := store.ClearScores(dash.GameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all %s runs.\n", dash.Title)
		return nil
	}

	runs, err := store.TopRuns(dash.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", dash.Title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'dash play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %10s  %8s  %-10s  %s\n", "Rank", "Score", "Presents", "Difficulty", "When")
	fmt.Fprintf(out, "  %-4s  %10s  %8s  %-10s  %s\n", "----", "-----", "--------", "----------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %10s  %8d  %-10s  %s\n",
			i+1, humanize.Comma(int64(r.Score)), r.Presents, r.Difficulty, humanize.Time(r.CreatedAt))
		if r.Verdict != "" {
			fmt.Fprintf(out, "        %q\n", r.Verdict)
		}
	}

	stats, err := store.GetGameStats(dash.GameID)
	if err != nil {
		return fmt.Errorf("cannot retrieve stats: %w", err)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %s  |  Runs: %s  |  Presents delivered: %s\n",
		humanize.Comma(int64(stats.HighScore)),
		humanize.Comma(int64(stats.GamesCount)),
		humanize.Comma(stats.TotalPresents))
	return nil
}
