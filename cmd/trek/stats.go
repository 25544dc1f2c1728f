package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trek/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show mission statistics by outcome",
	Long: `Summarise every recorded mission grouped by how it ended.

Examples:
  trek stats
  trek stats --db ./missions.db`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func runStats(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening mission database: %v", err)
	}
	defer store.Close()

	stats, err := store.Stats()
	if err != nil {
		fatalf("retrieving statistics: %v", err)
	}

	if len(stats) == 0 {
		fmt.Println("No missions recorded yet.")
		return
	}

	outcomes := make([]string, 0, len(stats))
	total := 0
	for outcome, st := range stats {
		outcomes = append(outcomes, outcome)
		total += st.Missions
	}
	sort.Strings(outcomes)

	fmt.Printf("Missions flown: %d\n\n", total)
	fmt.Printf("  %-14s  %-8s  %-9s  %-9s  %-8s  %s\n",
		"Outcome", "Missions", "Best", "Average", "Klingons", "Last")
	fmt.Printf("  %-14s  %-8s  %-9s  %-9s  %-8s  %s\n",
		"-------", "--------", "----", "-------", "--------", "----")

	for _, outcome := range outcomes {
		st := stats[outcome]
		fmt.Printf("  %-14s  %-8d  %-9.2f  %-9.2f  %-8d  %s\n",
			st.Outcome, st.Missions, st.BestEfficiency, st.AvgEfficiency,
			st.KlingonsDestroyed, lastPlayed(st))
	}
}

func lastPlayed(st *storage.OutcomeStats) string {
	if st.LastPlayed.IsZero() {
		return "-"
	}
	return st.LastPlayed.Format("2006-01-02 15:04")
}
