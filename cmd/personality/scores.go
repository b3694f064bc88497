package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/younwookim/personality/internal/infrastructure/storage"
)

var (
	flagLimit     int
	flagAllStages bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the longest runs",
	Long: `Display the longest runs from the run history.

Examples:
  personality scores
  personality scores --limit 5
  personality scores --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = store.Close() }()

		stage := flagStage
		if flagAllStages {
			stage = ""
		}
		runs, err := store.TopRuns(stage, flagLimit)
		if err != nil {
			return err
		}
		printScores(cmd.OutOrStdout(), stage, runs)
		return nil
	},
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagAllStages, "all", false, "Show runs from every stage")
}

// printScores writes the run table. An empty stage means all stages.
func printScores(w io.Writer, stage string, runs []storage.Run) {
	title := "all stages"
	if stage != "" {
		title = "stage " + stage
	}
	fmt.Fprintf(w, "Longest runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'personality play' to set the first one!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Seconds", "Stage", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-8s  %s\n", "----", "-------", "-----", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-8d  %-8s  %s\n", i+1, r.Seconds, r.Stage, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}
