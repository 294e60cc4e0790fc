package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Niaki1412/Super-Mario-Game/internal/infrastructure/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [map]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs for a map, or for every map when no
map is given.

Examples:
  game scores
  game scores demo --limit 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	var mapName string
	if len(args) > 0 {
		mapName = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	runs, err := store.TopRuns(mapName, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	title := mapName
	if title == "" {
		title = "all maps"
	}
	fmt.Fprintf(out, "Best runs - %s\n\n", title)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	if mapName != "" {
		best, err := store.BestScore(mapName)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  High score: %d\n\n", best)
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-8s  %-7s  %s\n", "Rank", "Map", "Score", "Outcome", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %-8s  %-7s  %s\n", "----", "---", "-----", "-------", "----", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-10s  %-8d  %-8s  %6.1fs  %s\n",
			i+1, r.Map, r.Score, r.Outcome, float64(r.Frames)/60, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
