package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectn/internal/platform/tui"
	"github.com/vovakirdan/connectn/internal/storage"
)

var (
	standingsInteractive bool
	standingsClear       bool
)

var standingsCmd = &cobra.Command{
	Use:   "standings",
	Short: "Show wins, losses and ties per agent",
	Long: `Display every agent that has a stored match, ranked by points: a win
counts 1 and a tie 1/2. Forfeits are losses by timeout, error, illegal
or missing move.

Examples:
  connectn standings
  connectn standings --interactive
  connectn standings --clear`,
	Args: cobra.NoArgs,
	Run:  runStandings,
}

func init() {
	standingsCmd.Flags().BoolVarP(&standingsInteractive, "interactive", "i", false, "Browse standings and recent matches in a TUI")
	standingsCmd.Flags().BoolVar(&standingsClear, "clear", false, "Delete every stored match")
}

func runStandings(cmd *cobra.Command, args []string) {
	if code := showStandings(cmd, args); code != 0 {
		os.Exit(code)
	}
}

func showStandings(cmd *cobra.Command, args []string) int {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		return 1
	}
	defer store.Close()

	if standingsClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing matches: %v\n", err)
			return 1
		}
		fmt.Println("All matches deleted.")
		return 0
	}

	if standingsInteractive {
		width, height, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	standings, err := store.Standings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving standings: %v\n", err)
		return 1
	}

	fmt.Println("Standings")
	fmt.Println()

	if len(standings) == 0 {
		fmt.Println("No matches recorded yet.")
		return 0
	}

	fmt.Printf("  %-4s  %-32s  %-5s  %-4s  %-4s  %-4s  %-8s  %s\n", "Rank", "Agent", "Games", "Won", "Lost", "Tied", "Forfeits", "Points")
	fmt.Printf("  %-4s  %-32s  %-5s  %-4s  %-4s  %-4s  %-8s  %s\n", "----", "-----", "-----", "---", "----", "----", "--------", "------")
	for i, s := range standings {
		fmt.Printf("  %-4d  %-32s  %-5d  %-4d  %-4d  %-4d  %-8d  %g\n",
			i+1, s.Agent, s.Games, s.Wins, s.Losses, s.Ties, s.Forfeits, s.Points())
	}
	return 0
}
