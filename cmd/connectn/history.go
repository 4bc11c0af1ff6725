package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectn/internal/storage"
)

var (
	historyLimit int
	historyShow  string
)

var historyCmd = &cobra.Command{
	Use:   "history [agent]",
	Short: "Show recently stored matches",
	Long: `Display the most recent matches, optionally only those an agent took
part in. Agent names are matched exactly as stored, e.g. "greedy".

Examples:
  connectn history
  connectn history greedy --limit 5
  connectn history --show 3f2c9a4e-...`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().StringVar(&historyShow, "show", "", "Print the final board of one match")
}

func runHistory(cmd *cobra.Command, args []string) {
	if code := listHistory(cmd, args); code != 0 {
		os.Exit(code)
	}
}

func listHistory(cmd *cobra.Command, args []string) int {
	cfg := loadConfig()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening matches database: %v\n", err)
		return 1
	}
	defer store.Close()

	if historyShow != "" {
		return showMatch(store, historyShow)
	}

	agentName := ""
	if len(args) == 1 {
		agentName = args[0]
	}

	matches, err := store.RecentMatches(agentName, historyLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		return 1
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'connectn play minimax greedy' to record the first one!")
		return 0
	}

	fmt.Printf("  %-16s  %-8s  %-7s  %-12s  %-5s  %s\n", "Date", "Match", "Score", "Reason", "Turns", "Players")
	fmt.Printf("  %-16s  %-8s  %-7s  %-12s  %-5s  %s\n", "----", "-----", "-----", "------", "-----", "-------")
	for _, m := range matches {
		fmt.Printf("  %-16s  %-8s  %-7s  %-12s  %-5d  %s vs %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), shortID(m.MatchID), m.Score(), m.EndReason, m.Turns, m.FirstAgent, m.SecondAgent)
	}
	return 0
}

func showMatch(store *storage.Store, id string) int {
	m, err := store.MatchByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving match: %v\n", err)
		return 1
	}
	if m == nil {
		fmt.Fprintf(os.Stderr, "Error: no match %q\n", id)
		return 1
	}

	fmt.Printf("Match %s\n", m.MatchID)
	fmt.Printf("%s (X) vs %s (O)\n", m.FirstAgent, m.SecondAgent)
	fmt.Printf("%s by %s after %d turns, %dx%d connect %d\n", m.Score(), m.EndReason, m.Turns, m.Width, m.Height, m.WinLength)
	if m.Error != "" {
		fmt.Printf("Error: %s\n", m.Error)
	}
	fmt.Println()
	fmt.Print(m.Board)
	return 0
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
