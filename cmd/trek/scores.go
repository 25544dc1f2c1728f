package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-trek/internal/platform/tui"
	"github.com/vovakirdan/tui-trek/internal/storage"
	"github.com/vovakirdan/tui-trek/internal/trek"
)

var (
	flagScoresLimit int
	flagScoresPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [outcome]",
	Short: "Show the best recorded missions",
	Long: `Display the best missions, ranked by efficiency rating and then by
Klingons destroyed. Optionally restrict the list to one outcome:
victory, ship_destroyed, time_expired or resigned.

On a terminal without an outcome argument an interactive mission log
opens; use --plain for a printed table.

Examples:
  trek scores
  trek scores victory
  trek scores --plain --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of missions to show")
	scoresCmd.Flags().BoolVar(&flagScoresPlain, "plain", false, "Print a plain table instead of the interactive log")
}

func runScores(_ *cobra.Command, args []string) {
	outcome := ""
	if len(args) == 1 {
		outcome = args[0]
		if !knownOutcome(outcome) {
			fatalf("unknown outcome %q (want victory, ship_destroyed, time_expired or resigned)", outcome)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening mission database: %v", err)
	}
	defer store.Close()

	if outcome == "" && !flagScoresPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatalf("%v", err)
		}
		return
	}

	missions, err := store.TopMissions(outcome, flagScoresLimit)
	if err != nil {
		fatalf("retrieving missions: %v", err)
	}

	title := "all outcomes"
	if outcome != "" {
		title = outcome
	}
	fmt.Printf("Best Missions - %s\n", title)
	fmt.Println()

	if len(missions) == 0 {
		fmt.Println("No missions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'trek play' to record the first one!")
		return
	}

	fmt.Printf("  %-4s  %-14s  %-10s  %-8s  %-9s  %-10s  %s\n",
		"Rank", "Outcome", "Player", "Klingons", "Stardates", "Rating", "Date")
	fmt.Printf("  %-4s  %-14s  %-10s  %-8s  %-9s  %-10s  %s\n",
		"----", "-------", "------", "--------", "---------", "------", "----")

	for i, m := range missions {
		fmt.Printf("  %-4d  %-14s  %-10s  %-8s  %-9.1f  %-10.2f  %s\n",
			i+1, m.Outcome, m.Player,
			fmt.Sprintf("%d/%d", m.KlingonsDestroyed, m.TotalKlingons),
			m.StardatesUsed, m.Efficiency,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func knownOutcome(s string) bool {
	for _, st := range []trek.Status{trek.AllKlingonsDestroyed, trek.ShipDestroyed, trek.TimeExpired, trek.Resigned} {
		if st.String() == s {
			return true
		}
	}
	return false
}
