package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [layout]",
	Short: "Show recent runs and totals",
	Long: `Display the 10 most recent runs, optionally for one layout, followed by
per-layout totals.

Examples:
  platformer stats
  platformer stats classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	layout := ""
	if len(args) > 0 {
		layout = args[0]
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(layout, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent runs")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to record the first run!")
		return
	}

	fmt.Printf("  %-16s  %-8s  %7s  %5s  %5s  %5s  %5s  %6s\n", "Date", "Layout", "Time", "Jumps", "Lands", "Bumps", "Walls", "Resets")
	for _, r := range runs {
		fmt.Printf("  %-16s  %-8s  %6.1fs  %5d  %5d  %5d  %5d  %6d\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Layout, r.Stats.Seconds,
			r.Stats.Jumps, r.Stats.Landings, r.Stats.HeadBumps, r.Stats.WallHits, r.Stats.Resets)
	}

	totals, err := store.LayoutTotals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving totals: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		if layout == "" || name == layout {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	fmt.Println()
	fmt.Println("Totals")
	fmt.Println()
	for _, name := range names {
		t := totals[name]
		fmt.Printf("  %-8s  %d runs, %.0fs played, %d jumps, %d landings, last %s\n",
			name, t.Runs, t.Seconds, t.Jumps, t.Landings, t.LastPlayed.Format("2006-01-02"))
	}
}
