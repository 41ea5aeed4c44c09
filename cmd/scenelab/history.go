package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/storage"
)

var (
	flagLimit int
	flagClear bool
	flagStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history [example]",
	Short: "Show recorded runs",
	Long: `Display the most recent recorded runs, optionally for one example.

Examples:
  scenelab history
  scenelab history particles --limit 5
  scenelab history --stats
  scenelab history animation --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Maximum number of runs to show")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the selected runs instead of listing them")
	historyCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-example totals")
}

func runHistory(cmd *cobra.Command, args []string) error {
	exampleID := ""
	if len(args) == 1 {
		exampleID = args[0]
		// Check if example exists
		if !registry.Exists(exampleID) {
			return &registry.NotFoundError{Key: exampleID}
		}
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearRuns(exampleID); err != nil {
			return err
		}
		logger.Info("runs cleared", "example", exampleID)
		return nil
	}

	if flagStats {
		stats, err := store.AllExampleStats()
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(stats))
		for id := range stats {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		fmt.Fprintf(out, "  %-10s  %5s  %10s  %7s  %s\n", "Example", "Runs", "Ticks", "MaxPts", "Last")
		for _, id := range ids {
			st := stats[id]
			fmt.Fprintf(out, "  %-10s  %5d  %10d  %7d  %s\n",
				st.ExampleID, st.Runs, st.TotalTicks, st.MaxPoints, st.LastRun.Format("2006-01-02 15:04"))
		}
		return nil
	}

	runs, err := store.RecentRuns(exampleID, flagLimit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Use 'scenelab run <example> --record' to record one.")
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-5s  %-10s  %6s  %4s  %6s  %-16s  %6s  %s\n",
		"ID", "Example", "Seed", "FPS", "Ticks", "Digest", "Points", "Date")

	// Print runs
	for _, r := range runs {
		fmt.Fprintf(out, "  %-5d  %-10s  %6d  %4d  %6d  %-16s  %6d  %s\n",
			r.ID, r.ExampleID, r.Seed, r.TickRate, r.Ticks,
			storage.FormatDigest(r.Digest), r.Points, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
