package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-trek/internal/storage"
)

var flagListLimit int

var listCmd = &cobra.Command{
	Use:   "list [id]",
	Short: "List recently flown missions",
	Long: `Shows the most recent missions, newest first. With a mission ID,
prints the full record of that mission including its seed, so the same
galaxy can be replayed with 'trek play --seed'.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runList,
}

func init() {
	listCmd.Flags().IntVar(&flagListLimit, "limit", 20, "Number of missions to show")
}

func runList(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening mission database: %v", err)
	}
	defer store.Close()

	if len(args) == 1 {
		id, parseErr := strconv.ParseInt(args[0], 10, 64)
		if parseErr != nil {
			fatalf("invalid mission id %q", args[0])
		}
		showMission(store, id)
		return
	}

	missions, err := store.RecentMissions(flagListLimit)
	if err != nil {
		fatalf("retrieving missions: %v", err)
	}

	if len(missions) == 0 {
		fmt.Println("No missions recorded yet.")
		return
	}

	fmt.Println("Recent missions:")
	fmt.Println()

	// Calculate column widths
	maxPlayerLen := len("Player")
	for _, m := range missions {
		if len(m.Player) > maxPlayerLen {
			maxPlayerLen = len(m.Player)
		}
	}

	fmt.Printf("  %-5s  %-*s  %-14s  %-10s  %s\n", "ID", maxPlayerLen, "Player", "Outcome", "Difficulty", "Date")
	fmt.Printf("  %-5s  %-*s  %-14s  %-10s  %s\n", "--", maxPlayerLen, "------", "-------", "----------", "----")

	for _, m := range missions {
		fmt.Printf("  %-5d  %-*s  %-14s  %-10s  %s\n",
			m.ID, maxPlayerLen, m.Player, m.Outcome, m.Difficulty,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Println("Run 'trek list <id>' for the details of a mission.")
}

func showMission(store *storage.Store, id int64) {
	m, err := store.MissionByID(id)
	if err != nil {
		fatalf("retrieving mission: %v", err)
	}
	if m == nil {
		fatalf("no mission with id %d", id)
	}

	fmt.Printf("Mission %d\n\n", m.ID)
	fmt.Printf("  Player:      %s\n", m.Player)
	fmt.Printf("  Outcome:     %s\n", m.Outcome)
	fmt.Printf("  Difficulty:  %s\n", m.Difficulty)
	fmt.Printf("  Seed:        %d\n", m.Seed)
	fmt.Printf("  Klingons:    %d of %d destroyed\n", m.KlingonsDestroyed, m.TotalKlingons)
	fmt.Printf("  Starbases:   %d left\n", m.StarbasesLeft)
	fmt.Printf("  Stardates:   %.1f\n", m.StardatesUsed)
	fmt.Printf("  Rating:      %.2f\n", m.Efficiency)
	fmt.Printf("  Date:        %s\n", m.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay with: trek play --seed %d --difficulty %s\n", m.Seed, m.Difficulty)
}
